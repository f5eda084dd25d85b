// This file defines the catalog records returned by the free-to-play games service.

package models

// GameSummary is one entry of a category listing. It backs a single card in the grid.
type GameSummary struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	Genre            string `json:"genre"`
	Platform         string `json:"platform"`
}

// GameDetail is the full record for one game, shown in the detail overlay.
type GameDetail struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
	Status      string `json:"status"`
	ProfileURL  string `json:"freetogame_profile_url"` // Outbound link to the game's page on the catalog site
}

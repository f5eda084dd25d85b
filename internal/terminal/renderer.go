// Package terminal paints the catalog view as styled text.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vrsandeep/freegames/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("12")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(40)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)
)

// Renderer writes each paint to an io.Writer. The overlay is only printed
// when it is shown; hiding it reprints the grid the user returns to.
type Renderer struct {
	out     io.Writer
	games   []models.GameSummary
	detail  *models.GameDetail
	columns int
}

// NewRenderer returns a Renderer laying cards out in the given number of columns.
func NewRenderer(out io.Writer, columns int) *Renderer {
	if columns < 1 {
		columns = 1
	}
	return &Renderer{out: out, columns: columns}
}

func (r *Renderer) ShowGrid(games []models.GameSummary) {
	r.games = games
	r.printGrid()
}

func (r *Renderer) ShowDetail(game *models.GameDetail) {
	r.detail = game
}

func (r *Renderer) ShowOverlay() {
	if r.detail == nil {
		return
	}
	fmt.Fprintln(r.out, Detail(r.detail))
}

func (r *Renderer) HideOverlay() {
	r.detail = nil
	r.printGrid()
}

func (r *Renderer) printGrid() {
	if len(r.games) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No games."))
		return
	}
	fmt.Fprintln(r.out, Grid(r.games, r.columns))
}

// Card renders one summary card.
func Card(game models.GameSummary) string {
	header := fmt.Sprintf("%s %s", titleStyle.Render(game.Title), freeStyle.Render("Free"))
	lines := []string{
		dimStyle.Render(fmt.Sprintf("#%d", game.ID)) + " " + header,
		game.ShortDescription,
		tagStyle.Render(game.Genre) + dimStyle.Render(" · ") + tagStyle.Render(game.Platform),
		dimStyle.Render(game.Thumbnail),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Grid lays cards out in rows of the given width.
func Grid(games []models.GameSummary, columns int) string {
	var rows []string
	for start := 0; start < len(games); start += columns {
		end := min(start+columns, len(games))
		cards := make([]string, 0, end-start)
		for _, game := range games[start:end] {
			cards = append(cards, Card(game))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Detail renders the full record panel.
func Detail(game *models.GameDetail) string {
	lines := []string{
		titleStyle.Render("Title: " + game.Title),
		"Category: " + tagStyle.Render(game.Genre),
		"Platform: " + tagStyle.Render(game.Platform),
		"Status: " + tagStyle.Render(game.Status),
		"",
		game.Description,
		"",
		"Show Game: " + game.ProfileURL,
		dimStyle.Render(game.Thumbnail),
	}
	return frameStyle.Width(80).Render(strings.Join(lines, "\n"))
}

package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vrsandeep/freegames/internal/models"
)

func TestRendererGrid(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, 2)
	r.ShowGrid([]models.GameSummary{
		{ID: 1, Title: "Alpha", ShortDescription: "first", Genre: "Shooter", Platform: "PC"},
		{ID: 2, Title: "Bravo", ShortDescription: "second", Genre: "MMORPG", Platform: "PC"},
		{ID: 3, Title: "Charlie", ShortDescription: "third", Genre: "Card", Platform: "Web Browser"},
	})

	text := out.String()
	for _, want := range []string{"Alpha", "Bravo", "Charlie", "#1", "#3", "Shooter", "Web Browser"} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, 3, strings.Count(text, "Free"))
}

func TestRendererEmptyGrid(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, 3).ShowGrid(nil)
	assert.Contains(t, out.String(), "No games.")
}

func TestRendererOverlay(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, 1)
	r.ShowGrid([]models.GameSummary{{ID: 1, Title: "Alpha"}})
	out.Reset()

	r.ShowDetail(&models.GameDetail{ID: 1, Title: "Alpha", Status: "Live", Description: "long text", ProfileURL: "https://www.freetogame.com/alpha"})
	assert.Empty(t, out.String(), "detail is not printed until the overlay is shown")

	r.ShowOverlay()
	assert.Contains(t, out.String(), "Status:")
	assert.Contains(t, out.String(), "long text")
	assert.Contains(t, out.String(), "https://www.freetogame.com/alpha")

	out.Reset()
	r.HideOverlay()
	assert.Contains(t, out.String(), "Alpha")
	assert.NotContains(t, out.String(), "long text")
}

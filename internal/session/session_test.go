package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/freegames/internal/models"
)

type countingCatalog struct {
	lists int
}

func (c *countingCatalog) FetchList(ctx context.Context, category string) []models.GameSummary {
	c.lists++
	return []models.GameSummary{{ID: 1, Title: category}}
}

func (c *countingCatalog) FetchByID(ctx context.Context, id int) *models.GameDetail { return nil }

func TestManagerGet(t *testing.T) {
	m, err := NewManager(&countingCatalog{}, "shooter", 4)
	require.NoError(t, err)

	s, created := m.Get("")
	assert.True(t, created)
	assert.NotEmpty(t, s.ID)

	same, created := m.Get(s.ID)
	assert.False(t, created)
	assert.Same(t, s, same)

	other, created := m.Get("unknown-token")
	assert.True(t, created)
	assert.NotEqual(t, "unknown-token", other.ID)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManagerEvictsOldestSession(t *testing.T) {
	m, err := NewManager(&countingCatalog{}, "shooter", 2)
	require.NoError(t, err)

	first, _ := m.Get("")
	m.Get("")
	m.Get("")

	assert.Equal(t, 2, m.Len())
	again, created := m.Get(first.ID)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, again.ID)
}

func TestEnsureInitializedFetchesOnce(t *testing.T) {
	catalog := &countingCatalog{}
	m, err := NewManager(catalog, "mmorpg", 4)
	require.NoError(t, err)

	s, _ := m.Get("")
	s.EnsureInitialized(context.Background())
	s.EnsureInitialized(context.Background())

	assert.Equal(t, 1, catalog.lists)
	assert.Equal(t, "mmorpg", s.View.Category())
	games, _, _ := s.Renderer.Snapshot()
	require.Len(t, games, 1)
	assert.Equal(t, "mmorpg", games[0].Title)
}

func TestNewManagerRejectsBadSize(t *testing.T) {
	_, err := NewManager(&countingCatalog{}, "shooter", 0)
	assert.Error(t, err)
}

func TestSelectCategoryReplacesDefaultLoad(t *testing.T) {
	catalog := &countingCatalog{}
	m, err := NewManager(catalog, "shooter", 4)
	require.NoError(t, err)

	s, _ := m.Get("")
	s.SelectCategory(context.Background(), "pixel")
	assert.Equal(t, 1, catalog.lists)
	assert.Equal(t, "pixel", s.View.Category())

	// The session counts as initialized now.
	s.EnsureInitialized(context.Background())
	assert.Equal(t, 1, catalog.lists)
	assert.Equal(t, "pixel", s.View.Category())

	s.SelectCategory(context.Background(), "sailing")
	assert.Equal(t, 2, catalog.lists)
	assert.Equal(t, "sailing", s.View.Category())
}

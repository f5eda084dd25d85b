// Package catalog talks to the free-to-play games catalog service.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vrsandeep/freegames/internal/models"
)

// DefaultCategory is listed when the caller does not name a category.
const DefaultCategory = "shooter"

var (
	// ErrUnexpectedStatus is returned when the service answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status from catalog service")
	// ErrNotFound is returned when the detail endpoint has no record for the id.
	ErrNotFound = errors.New("game not found")
)

// Options configures a Client.
type Options struct {
	BaseURL         string
	APIKey          string
	APIHost         string
	DefaultCategory string
	Timeout         time.Duration // 0 leaves the transport default in place
}

// Client issues the two read-only catalog requests. Every failure is logged
// and degrades to an empty list or a nil detail.
type Client struct {
	client          *http.Client
	baseURL         string
	apiKey          string
	apiHost         string
	defaultCategory string
	busy            *BusyState
}

// New creates a Client. A nil busy state gets a private one.
func New(opts Options, busy *BusyState) *Client {
	if busy == nil {
		busy = NewBusyState()
	}
	category := opts.DefaultCategory
	if category == "" {
		category = DefaultCategory
	}
	return &Client{
		client:          &http.Client{Timeout: opts.Timeout},
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		apiKey:          opts.APIKey,
		apiHost:         opts.APIHost,
		defaultCategory: category,
		busy:            busy,
	}
}

// Busy returns the state toggled around each request.
func (c *Client) Busy() *BusyState {
	return c.busy
}

// DefaultCategory returns the category listed for an empty category argument.
func (c *Client) DefaultCategory() string {
	return c.defaultCategory
}

// FetchList returns the games in a category. The category is forwarded as-is.
// The result is never nil; on any failure it is empty.
func (c *Client) FetchList(ctx context.Context, category string) []models.GameSummary {
	if category == "" {
		category = c.defaultCategory
	}
	c.busy.Set(true)
	defer c.busy.Set(false)

	games, err := c.listGames(ctx, category)
	if err != nil {
		log.Printf("Failed to fetch games for category %q: %v", category, err)
		return []models.GameSummary{}
	}
	return games
}

// FetchByID returns the detail record for one game, or nil if it could not
// be fetched or does not exist.
func (c *Client) FetchByID(ctx context.Context, id int) *models.GameDetail {
	c.busy.Set(true)
	defer c.busy.Set(false)

	game, err := c.getGame(ctx, id)
	if err != nil {
		log.Printf("Failed to fetch game %d: %v", id, err)
		return nil
	}
	return game
}

func (c *Client) listGames(ctx context.Context, category string) ([]models.GameSummary, error) {
	q := url.Values{}
	q.Set("category", category)

	var games []models.GameSummary
	if err := c.get(ctx, "/api/games", q, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []models.GameSummary{}
	}
	return games, nil
}

func (c *Client) getGame(ctx context.Context, id int) (*models.GameDetail, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))

	var game models.GameDetail
	if err := c.get(ctx, "/api/game", q, &game); err != nil {
		return nil, err
	}
	// The service answers unknown ids with a status object instead of a game.
	if game.ID != id {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return &game, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s?%s", ErrNotFound, path, req.URL.RawQuery)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

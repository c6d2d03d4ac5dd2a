package twitch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/streamvault/streamvault-cli/internal/domain"
	"github.com/streamvault/streamvault-cli/internal/logger"
)

// pageSize is the maximum page size the videos endpoint accepts.
const pageSize = 100

type videosResponse struct {
	Data       []domain.Highlight `json:"data"`
	Pagination struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
}

// Highlights fetches every highlight of the given user by walking the
// cursor pagination until the remote returns no cursor. Pages are
// concatenated in response order. Any request error aborts the whole
// fetch; partial pages are discarded by the caller.
func (c *Client) Highlights(ctx context.Context, userID string) ([]domain.Highlight, error) {
	var all []domain.Highlight
	cursor := ""

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.fetchPacer.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		query := url.Values{
			"user_id": {userID},
			"type":    {"highlight"},
			"first":   {strconv.Itoa(pageSize)},
		}
		if cursor != "" {
			query.Set("after", cursor)
		}

		var resp videosResponse
		if err := c.doJSON(ctx, http.MethodGet, "/videos", query, &resp); err != nil {
			return nil, fmt.Errorf("list highlights: %w", err)
		}

		all = append(all, resp.Data...)
		logger.Debug("fetched %d highlights, %d total", len(resp.Data), len(all))

		cursor = resp.Pagination.Cursor
		if cursor == "" {
			break
		}
	}

	return all, nil
}

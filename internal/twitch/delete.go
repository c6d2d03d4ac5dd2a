package twitch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/streamvault/streamvault-cli/internal/domain"
	"github.com/streamvault/streamvault-cli/internal/logger"
)

// deleteBatchSize is the hard Helix limit on IDs per delete request.
const deleteBatchSize = 5

type deleteResponse struct {
	Data []string `json:"data"`
}

// DeleteHighlights deletes the given highlights in batches of five,
// preserving input order. The returned count is the sum of IDs the remote
// actually reports deleted per batch, which can be less than the batch
// size. A 401 aborts immediately: the token is invalid for every
// remaining batch. Any other per-batch failure is logged and the loop
// continues.
//
// progress, when non-nil, is called after each batch with the running
// deleted count and the attempted total.
func (c *Client) DeleteHighlights(
	ctx context.Context, highlights []domain.Highlight, progress func(deleted, total int),
) (int, error) {
	total := len(highlights)
	deleted := 0

	for start := 0; start < total; start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > total {
			end = total
		}
		batch := highlights[start:end]

		if err := c.deletePacer.Wait(ctx); err != nil {
			return deleted, fmt.Errorf("rate limit wait: %w", err)
		}

		ids, err := c.deleteBatch(ctx, batch)
		if err != nil {
			if IsUnauthorized(err) {
				return deleted, fmt.Errorf("delete highlights: %w", err)
			}
			logger.Warn("failed to delete batch starting at %s: %v", batch[0].ID, err)
			continue
		}

		deleted += len(ids)
		if progress != nil {
			progress(deleted, total)
		}
	}

	return deleted, nil
}

// deleteBatch issues one delete request carrying every ID in the batch
// as a repeated query parameter and returns the IDs the remote deleted.
func (c *Client) deleteBatch(ctx context.Context, batch []domain.Highlight) ([]string, error) {
	query := url.Values{}
	for _, h := range batch {
		query.Add("id", h.ID)
	}

	var resp deleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/videos", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

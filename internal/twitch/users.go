package twitch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type usersResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Login       string `json:"login"`
		DisplayName string `json:"display_name"`
	} `json:"data"`
}

// UserID resolves a channel login name to its user ID.
// Returns ErrUserNotFound when the login matches no user.
func (c *Client) UserID(ctx context.Context, login string) (string, error) {
	query := url.Values{"login": {login}}

	var resp usersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/users", query, &resp); err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	if len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}
	return resp.Data[0].ID, nil
}

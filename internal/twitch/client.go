// Package twitch is the Helix API client used for listing and deleting
// a channel's highlights. The client is an explicit value constructed
// once and passed into the commands that need it; credentials are fields,
// not ambient state.
package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Helix API root.
	DefaultBaseURL = "https://api.twitch.tv/helix"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// fetchPaceInterval is the minimum delay between listing requests.
	fetchPaceInterval = 100 * time.Millisecond

	// deletePaceInterval is the minimum delay between delete batches.
	deletePaceInterval = 275 * time.Millisecond
)

// Options configures a Client.
type Options struct {
	// BaseURL overrides the Helix API root. Empty means DefaultBaseURL.
	BaseURL string

	// ClientID is sent as the Client-Id header on every request.
	ClientID string

	// Token is the bearer token for the Authorization header.
	Token string

	// HTTPClient overrides the authenticated client. Mainly for tests;
	// when set, Token is ignored.
	HTTPClient *http.Client
}

// Client wraps the Helix REST API.
type Client struct {
	baseURL     string
	http        *http.Client
	fetchPacer  *Pacer
	deletePacer *Pacer
}

// clientIDTransport decorates each request with the Client-Id header
// Helix requires alongside the bearer token.
type clientIDTransport struct {
	clientID string
	base     http.RoundTripper
}

func (t *clientIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Client-Id", t.clientID)
	return t.base.RoundTrip(clone)
}

// NewClient creates a Helix client authenticated with a static bearer
// token.
func NewClient(ctx context.Context, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = DefaultTimeout
	}
	httpClient.Transport = &clientIDTransport{
		clientID: opts.ClientID,
		base:     transportOrDefault(httpClient.Transport),
	}

	return &Client{
		baseURL:     baseURL,
		http:        httpClient,
		fetchPacer:  NewPacer(fetchPaceInterval),
		deletePacer: NewPacer(deletePaceInterval),
	}
}

func transportOrDefault(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}

// helixError is the JSON error body Helix returns on non-2xx responses.
type helixError struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// doJSON issues one request and decodes the JSON response into v.
// Non-2xx responses become *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.fetchPacer.UpdateFromResponse(resp)
	c.deletePacer.UpdateFromResponse(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			URL:        u,
		}
		var body helixError
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Message
			if apiErr.Message == "" {
				apiErr.Message = body.Error
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

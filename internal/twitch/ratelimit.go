package twitch

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HeaderRateRemaining is the remaining-points header sent by Helix.
	HeaderRateRemaining = "Ratelimit-Remaining"

	// HeaderRateReset is the bucket reset header (Unix seconds).
	HeaderRateReset = "Ratelimit-Reset"
)

// Pacer spaces out requests against one Helix endpoint family. It combines
// a proactive token bucket with a fixed minimum interval and a reactive
// check of the rate limit headers Helix returns on every response.
type Pacer struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	bucket    *rate.Limiter
}

// NewPacer creates a pacer enforcing at least interval between requests.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		remaining: -1, // Unknown until the first response
		bucket:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until it's safe to make the next request.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.bucket.Wait(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	remaining := p.remaining
	resetTime := p.resetTime
	p.mu.Unlock()

	if remaining == 0 && time.Now().Before(resetTime) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resetTime)):
		}
	}

	return nil
}

// UpdateFromResponse records the bucket state from Helix response headers.
func (p *Pacer) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			p.remaining = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			p.resetTime = time.Unix(val, 0)
		}
	}
}

// Remaining returns the last observed remaining points, or -1 if no
// response has been seen yet.
func (p *Pacer) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}

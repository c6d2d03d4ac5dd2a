package domain

import (
	"sort"
	"time"
)

// Highlight represents one archived stream segment as returned by the
// Helix videos endpoint. It is immutable once fetched; the pipeline only
// ever re-orders collections of highlights.
type Highlight struct {
	// ID is the unique video identifier within the channel.
	ID string `json:"id"`

	// UserID is the owning channel's user ID.
	UserID string `json:"user_id"`

	// UserLogin is the owning channel's login name.
	UserLogin string `json:"user_login"`

	// UserName is the owning channel's display name.
	UserName string `json:"user_name"`

	// Title is the highlight title. May contain arbitrary Unicode.
	Title string `json:"title"`

	// Description is the free-form video description.
	Description string `json:"description"`

	// CreatedAt is when the highlight was created.
	CreatedAt time.Time `json:"created_at"`

	// PublishedAt is when the highlight was published.
	PublishedAt time.Time `json:"published_at"`

	// URL is the public watch URL.
	URL string `json:"url"`

	// ThumbnailURL is the thumbnail template URL.
	ThumbnailURL string `json:"thumbnail_url"`

	// ViewCount is the lifetime view counter.
	ViewCount int `json:"view_count"`

	// Language is the broadcast language code.
	Language string `json:"language"`

	// Type is the video type. Always "highlight" for this tool.
	Type string `json:"type"`

	// Duration is the compact duration string, e.g. "1h2m3s".
	Duration string `json:"duration"`
}

// SortByCreatedAt orders highlights ascending by creation time, in place.
func SortByCreatedAt(highlights []Highlight) {
	sort.SliceStable(highlights, func(i, j int) bool {
		return highlights[i].CreatedAt.Before(highlights[j].CreatedAt)
	})
}

// DurationSeconds parses the compact Helix duration string ("1h2m3s",
// "3m21s", "46s") into whole seconds. Malformed input yields 0.
func DurationSeconds(s string) int {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return int(d.Seconds())
}

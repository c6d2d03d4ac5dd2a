package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain ascii", "Epic Win", "Epic_Win"},
		{"path separators", `raid/boss\kill`, "raid_boss_kill"},
		{"reserved characters", `what? "really": <yes>|no*`, "what_really_yes_no"},
		{"control characters", "tab\there\nnewline", "tab_here_newline"},
		{"emoji stripped", "pog 🎉🔥 moment", "pog_moment"},
		{"non-ascii stripped", "über straße", "ber_strae"},
		{"whitespace collapsed", "so   many    spaces", "so_many_spaces"},
		{"leading and trailing trimmed", "  _padded_  ", "padded"},
		{"underscore runs collapsed", "a___b____c", "a_b_c"},
		{"all invalid falls back", "🎉🔥💯", FallbackTitle},
		{"empty falls back", "", FallbackTitle},
		{"only separators falls back", `///\\\`, FallbackTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.title))
		})
	}
}

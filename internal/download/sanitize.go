package download

import (
	"strings"
	"unicode"
)

// FallbackTitle is used when sanitization leaves nothing of the title.
const FallbackTitle = "highlight"

// reserved characters that are unsafe in filenames on at least one
// supported platform.
const reservedChars = `<>:"/\|?*`

// SanitizeTitle converts a highlight title into a filesystem-safe token.
// Reserved characters and whitespace become underscores, control
// characters and non-ASCII runes (emoji included) are dropped, underscore
// runs are collapsed and trimmed. An all-invalid title yields
// FallbackTitle.
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	for _, r := range title {
		switch {
		case strings.ContainsRune(reservedChars, r):
			b.WriteByte('_')
		case unicode.IsSpace(r):
			b.WriteByte('_')
		case r < 0x20 || r == 0x7f:
			// control characters
		case r > unicode.MaxASCII:
			// emoji and anything else outside ASCII
		default:
			b.WriteRune(r)
		}
	}

	out := collapseUnderscores(b.String())
	out = strings.Trim(out, "_")
	if out == "" {
		return FallbackTitle
	}
	return out
}

func collapseUnderscores(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prev := false
	for _, r := range s {
		if r == '_' {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

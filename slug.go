package newsdesk

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify creates a URL-safe slug from a title.
// Accents are folded, letters are lower-cased, runs of spaces and hyphens
// become a single hyphen and other characters are dropped.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range norm.NFD.String(strings.ToLower(title)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining accent left over from NFD
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

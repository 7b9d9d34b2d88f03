package newsdesk

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled patterns for the markdown subset found in post text.
var (
	mdLinkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	mdBoldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdItalicPattern = regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`)
	mdBulletPattern = regexp.MustCompile(`^[-*•]\s+`)
)

// MarkdownToHTML converts one paragraph of post text into an HTML fragment
// wrapped in a single <p>. Only bold, italic, links and bullet lines are
// recognized. The text is HTML-escaped before conversion, so markup in the
// source renders as text.
//
// Applying it to its own output escapes the previous tags; call it once per
// paragraph.
func MarkdownToHTML(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullet := false
		if marker := mdBulletPattern.FindString(line); marker != "" {
			line = line[len(marker):]
			bullet = true
		}
		line = inlineToHTML(line)
		if bullet {
			line = "• " + line
		}
		out = append(out, line)
	}
	return "<p>" + strings.Join(out, "<br>") + "</p>"
}

// inlineToHTML escapes s and converts links, bold and italic spans.
func inlineToHTML(s string) string {
	s = html.EscapeString(s)
	s = mdLinkPattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := mdLinkPattern.FindStringSubmatch(m)
		text, href := parts[1], parts[2]
		if !isSafeHref(html.UnescapeString(href)) {
			return text
		}
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + text + `</a>`
	})
	s = mdBoldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalicPattern.ReplaceAllString(s, "<em>$1</em>")
	return s
}

func isSafeHref(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "mailto:")
}

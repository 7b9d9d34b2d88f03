package importer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExcerptLength is the maximum number of characters kept in an excerpt
// before the ellipsis.
const ExcerptLength = 200

// tagPattern matches markup that was escaped in the source text and comes
// back as literal tags once entities are decoded.
var tagPattern = regexp.MustCompile(`<[^<>]*>`)

// Excerpt returns the plain text of content, whitespace-collapsed and
// truncated to ExcerptLength characters with "..." appended when cut.
func Excerpt(content string) string {
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return strings.TrimSpace(string(runes[:ExcerptLength])) + "..."
}

// PlainText strips tags from an HTML fragment, decodes entities and
// collapses whitespace. Tags that only appear after decoding are removed
// too.
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: " "})
	})
	text := tagPattern.ReplaceAllString(doc.Text(), " ")
	return strings.Join(strings.Fields(text), " ")
}

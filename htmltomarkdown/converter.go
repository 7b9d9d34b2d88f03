// Package htmltomarkdown converts stored news and project HTML to Markdown
// for the static site export.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/newsdesk"
)

// Ensure Converter implements newsdesk.Converter at compile time.
var _ newsdesk.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown. Bullet lines of
// imported posts become list items. Returns EINVALID for blank input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", newsdesk.WrapError(newsdesk.EINTERNAL, err, "html to markdown conversion failed")
	}

	return bulletsToList(strings.TrimSpace(result)), nil
}

// bulletPrefix starts the bullet lines of imported posts, which are stored
// as "• item" lines separated by <br>.
const bulletPrefix = "• "

// bulletsToList rewrites runs of bullet lines as a Markdown list and drops
// the hard line breaks around them.
func bulletsToList(md string) string {
	if !strings.Contains(md, bulletPrefix) {
		return md
	}

	lines := strings.Split(md, "\n")
	isBullet := func(i int) bool {
		return i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), bulletPrefix)
	}

	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		if !isBullet(i) && !isBullet(i+1) {
			out = append(out, line)
			continue
		}
		line = trimHardBreak(line)
		if !isBullet(i) {
			out = append(out, line)
			continue
		}
		if i > 0 && !isBullet(i-1) && strings.TrimSpace(lines[i-1]) != "" {
			out = append(out, "")
		}
		out = append(out, "- "+strings.TrimPrefix(strings.TrimSpace(line), bulletPrefix))
	}
	return strings.Join(out, "\n")
}

// trimHardBreak removes a trailing two-space or backslash line break.
func trimHardBreak(line string) string {
	line = strings.TrimRight(line, " ")
	return strings.TrimSuffix(line, "\\")
}

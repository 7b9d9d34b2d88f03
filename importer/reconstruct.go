package importer

import (
	"regexp"
	"strings"

	"github.com/fwojciec/newsdesk"
)

// Markers emitted by the reader proxy and by LinkedIn pages.
const (
	// TitlePrefix starts the line holding the page title.
	TitlePrefix = "Title:"

	// BodyMarker is the line after which the page body starts.
	BodyMarker = "Markdown Content:"

	// UntitledTitle is used when the response carries no title line.
	UntitledTitle = "Untitled import"

	// authorScanLines bounds the author search to the page header.
	authorScanLines = 30
)

// endMarkers end the article: everything after them is related content or
// a login wall. Matching is case-insensitive.
var endMarkers = []string{
	"más artículos de",
	"more articles from",
	"more articles by",
	"ver temas",
	"see topics",
	"explorar temas",
	"explore topics",
	"inicia sesión para ver",
	"sign in to view",
	"únete para ver",
	"join to view",
}

// DefaultEndMarkers returns a copy of the built-in end markers.
func DefaultEndMarkers() []string {
	return append([]string(nil), endMarkers...)
}

// proxyHeaders are metadata lines added by the reader proxy.
var proxyHeaders = []string{
	"Title:",
	"URL Source:",
	"Published Time:",
	"Markdown Content:",
	"Warning:",
}

// followMarkers appear on the line below an author byline.
var followMarkers = []string{"seguir", "follow", "publicado", "published"}

var (
	titleSuffixPattern   = regexp.MustCompile(`(?i)\s*\|\s*linkedin\s*$`)
	authorHeadingPattern = regexp.MustCompile(`^#{1,3}\s+(\S.*)$`)
	authorLinePattern    = regexp.MustCompile(`^(\p{Lu}\p{Ll}+(?:\s+\p{Lu}\p{Ll}+)*),\s*\p{Lu}\p{Ll}+`)
	separatorPattern     = regexp.MustCompile(`^(?:={3,}|-{3,})$`)
	imageLinePattern     = regexp.MustCompile(`^\[?!\[[^\]]*\]\([^)]*\)`)
	platformLinkPattern  = regexp.MustCompile(`(?i)^(?:\[[^\]]*\]\()?https?://(?:[a-z0-9-]+\.)*linkedin\.com\S*$`)
	bulletPattern        = regexp.MustCompile(`^[-*•]\s+`)
)

// Article is the text reconstructed from a reader-proxy response.
type Article struct {
	Title   string
	Author  string
	Content string // HTML paragraphs joined by newlines
}

// Reconstructor rebuilds an article from the flattened text rendering of a
// post. It works line by line: the rendering carries no structure beyond
// the markdown the proxy emits.
type Reconstructor struct {
	// Noise drops platform chrome. Defaults to newsdesk.DefaultNoisePatterns.
	Noise newsdesk.NoiseClassifier

	// EndMarkers stop the body scan. Defaults to DefaultEndMarkers.
	EndMarkers []string

	// Render converts one paragraph to HTML. Defaults to newsdesk.MarkdownToHTML.
	Render func(text string) string
}

// NewReconstructor returns a Reconstructor using noise and the default markers.
func NewReconstructor(noise newsdesk.NoiseClassifier) *Reconstructor {
	return &Reconstructor{
		Noise:      noise,
		EndMarkers: DefaultEndMarkers(),
		Render:     newsdesk.MarkdownToHTML,
	}
}

// Reconstruct extracts the title, author and body of the post in raw.
// It never fails; missing pieces degrade to defaults.
func (r *Reconstructor) Reconstruct(raw string) *Article {
	lines := splitLines(raw)

	author, authorHeading := findAuthor(lines)
	article := &Article{
		Title:  findTitle(lines),
		Author: author,
	}

	body := lines
	for i, line := range lines {
		if line == BodyMarker {
			body = lines[i+1:]
			break
		}
	}

	noise := r.noise()
	render := r.render()

	var paragraphs []string
	var buf []string
	flush := func() {
		if len(buf) == 0 {
			return
		}
		html := render(joinParagraph(buf))
		buf = buf[:0]
		// Joining lines can assemble a pattern that no single line held.
		if noise.IsNoise(PlainText(html)) {
			return
		}
		paragraphs = append(paragraphs, html)
	}

scan:
	for _, line := range body {
		switch {
		case line == "":
			flush()
		case r.isEndMarker(line):
			break scan
		case separatorPattern.MatchString(line):
			flush()
		case imageLinePattern.MatchString(line):
		case isProxyHeader(line):
		case authorHeading != "" && line == authorHeading:
		case platformLinkPattern.MatchString(line):
		case noise.IsNoise(line):
		default:
			buf = append(buf, line)
		}
	}
	flush()

	article.Content = strings.Join(paragraphs, "\n")
	return article
}

func (r *Reconstructor) noise() newsdesk.NoiseClassifier {
	if r.Noise == nil {
		return newsdesk.DefaultNoisePatterns()
	}
	return r.Noise
}

func (r *Reconstructor) render() func(string) string {
	if r.Render == nil {
		return newsdesk.MarkdownToHTML
	}
	return r.Render
}

func (r *Reconstructor) isEndMarker(line string) bool {
	markers := r.EndMarkers
	if markers == nil {
		markers = endMarkers
	}
	lower := strings.ToLower(line)
	for _, m := range markers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// splitLines splits raw on newlines and trims every line.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// findTitle returns the first title line without its prefix and platform suffix.
func findTitle(lines []string) string {
	for _, line := range lines {
		if !strings.HasPrefix(line, TitlePrefix) {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, TitlePrefix))
		title = titleSuffixPattern.ReplaceAllString(title, "")
		if title != "" {
			return title
		}
	}
	return UntitledTitle
}

// findAuthor scans the page header for a byline. It returns the author and,
// when the byline was a heading, the heading line so the body can skip it.
//
// A "Name Surname, Headline" line counts only when the next line carries a
// follow or publication marker. The heuristic can misfire on body text
// shaped the same way.
func findAuthor(lines []string) (author string, heading string) {
	limit := min(len(lines), authorScanLines)
	for i := 0; i < limit; i++ {
		line := lines[i]
		if m := authorHeadingPattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), line
		}
		if m := authorLinePattern.FindStringSubmatch(line); m != nil && i+1 < len(lines) {
			next := strings.ToLower(lines[i+1])
			for _, marker := range followMarkers {
				if strings.Contains(next, marker) {
					return m[1], ""
				}
			}
		}
	}
	return "", ""
}

func isProxyHeader(line string) bool {
	for _, h := range proxyHeaders {
		if strings.HasPrefix(line, h) {
			return true
		}
	}
	return false
}

// joinParagraph joins buffered lines with spaces, keeping bullet lines on
// their own line.
func joinParagraph(lines []string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			if bulletPattern.MatchString(line) {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(line)
	}
	return sb.String()
}

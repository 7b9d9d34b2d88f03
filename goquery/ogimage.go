// Package goquery implements HTML parsing for newsdesk using goquery.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdesk"
)

// defaultMirrors are public CORS mirrors that return a page's raw HTML.
// The target URL is query-escaped and appended to the prefix.
var defaultMirrors = []string{
	"https://api.allorigins.win/raw?url=",
	"https://corsproxy.io/?url=",
}

// DefaultMirrors returns a copy of the built-in mirror prefixes, in lookup
// order.
func DefaultMirrors() []string {
	return append([]string(nil), defaultMirrors...)
}

// imageSelectors are checked in order; the first non-empty content wins.
var imageSelectors = []string{
	`meta[property="og:image"]`,
	`meta[property="og:image:secure_url"]`,
	`meta[name="og:image"]`,
}

// Ensure OGImageFinder implements newsdesk.ImageFinder at compile time.
var _ newsdesk.ImageFinder = (*OGImageFinder)(nil)

// OGImageFinder reads the Open Graph image of a page fetched through a
// mirror.
type OGImageFinder struct {
	Fetcher newsdesk.Fetcher
	Mirror  string
}

// NewOGImageFinders returns one finder per mirror, in order.
func NewOGImageFinders(fetcher newsdesk.Fetcher, mirrors ...string) []newsdesk.ImageFinder {
	finders := make([]newsdesk.ImageFinder, 0, len(mirrors))
	for _, m := range mirrors {
		finders = append(finders, &OGImageFinder{Fetcher: fetcher, Mirror: m})
	}
	return finders
}

// Name returns the mirror host.
func (f *OGImageFinder) Name() string {
	u, err := url.Parse(f.Mirror)
	if err != nil || u.Host == "" {
		return f.Mirror
	}
	return u.Host
}

// FindImage fetches sourceURL through the mirror and returns its og:image.
func (f *OGImageFinder) FindImage(ctx context.Context, sourceURL string) (string, error) {
	html, err := f.Fetcher.Fetch(ctx, f.Mirror+url.QueryEscape(sourceURL))
	if err != nil {
		return "", err
	}
	return OGImage(html, sourceURL)
}

// OGImage returns the absolute Open Graph image URL declared in html.
// Relative URLs are resolved against pageURL. Returns ENOTFOUND when no
// image is declared.
func OGImage(html string, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range imageSelectors {
		content := strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
		if content == "" {
			continue
		}
		if resolved := resolveURL(pageURL, content); resolved != "" {
			return resolved, nil
		}
	}

	return "", newsdesk.Errorf(newsdesk.ENOTFOUND, "no og:image on %s", pageURL)
}

// resolveURL makes ref absolute and returns "" for non-HTTP results.
func resolveURL(base, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if b, err := url.Parse(base); err == nil {
		r = b.ResolveReference(r)
	}
	if r.Scheme != "http" && r.Scheme != "https" {
		return ""
	}
	return r.String()
}

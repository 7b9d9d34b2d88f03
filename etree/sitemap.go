// Package etree writes the site's sitemap.xml using etree.
package etree

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/newsdesk"
)

// sitemapNamespace is the sitemaps.org schema namespace.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// DefaultStaticPaths are the fixed pages of the marketing site.
var DefaultStaticPaths = []string{"/", "/about", "/services", "/projects", "/news", "/contact"}

// Entry is a single <url> of the sitemap.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapWriter renders the static pages, news items and projects of the
// site as a sitemap.
type SitemapWriter struct {
	baseURL     string
	staticPaths []string
}

// NewSitemapWriter creates a SitemapWriter for the site at baseURL.
// Returns EINVALID if baseURL is not an absolute http(s) URL.
func NewSitemapWriter(baseURL string, staticPaths ...string) (*SitemapWriter, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "invalid base URL %q", baseURL)
	}
	if len(staticPaths) == 0 {
		staticPaths = DefaultStaticPaths
	}
	return &SitemapWriter{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		staticPaths: staticPaths,
	}, nil
}

// Entries lists the sitemap entries: static pages first, then news
// items and projects in the order given.
func (w *SitemapWriter) Entries(news []*newsdesk.NewsItem, projects []*newsdesk.Project) []Entry {
	entries := make([]Entry, 0, len(w.staticPaths)+len(news)+len(projects))
	for _, p := range w.staticPaths {
		priority := 0.5
		if p == "/" {
			priority = 1.0
		}
		entries = append(entries, Entry{Loc: w.loc(p), ChangeFreq: "monthly", Priority: priority})
	}
	for _, n := range news {
		entries = append(entries, Entry{
			Loc:        w.loc("/news/" + n.Slug),
			LastMod:    n.UpdatedAt,
			ChangeFreq: "yearly",
			Priority:   0.6,
		})
	}
	for _, p := range projects {
		entries = append(entries, Entry{
			Loc:        w.loc("/projects/" + p.Slug),
			LastMod:    p.UpdatedAt,
			ChangeFreq: "yearly",
			Priority:   0.7,
		})
	}
	return entries
}

// Write writes the sitemap XML for news and projects to out.
func (w *SitemapWriter) Write(out io.Writer, news []*newsdesk.NewsItem, projects []*newsdesk.Project) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, e := range w.Entries(news, projects) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(e.Loc)
		if !e.LastMod.IsZero() {
			u.CreateElement("lastmod").SetText(e.LastMod.UTC().Format(time.DateOnly))
		}
		if e.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(e.ChangeFreq)
		}
		if e.Priority > 0 {
			u.CreateElement("priority").SetText(fmt.Sprintf("%.1f", e.Priority))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(out); err != nil {
		return fmt.Errorf("writing sitemap XML: %w", err)
	}
	return nil
}

func (w *SitemapWriter) loc(path string) string {
	if path == "/" {
		return w.baseURL + "/"
	}
	return w.baseURL + path
}

// ParseSitemap returns the <loc> values of a urlset document.
func ParseSitemap(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, newsdesk.WrapError(newsdesk.EINVALID, err, "parsing sitemap XML: %v", err)
	}

	root := doc.SelectElement("urlset")
	if root == nil {
		return nil, newsdesk.Errorf(newsdesk.EINVALID, "sitemap has no urlset")
	}

	var locs []string
	for _, urlEl := range root.SelectElements("url") {
		if loc := urlEl.SelectElement("loc"); loc != nil {
			if text := strings.TrimSpace(loc.Text()); text != "" {
				locs = append(locs, text)
			}
		}
	}
	return locs, nil
}

package importer

import (
	"context"
	"regexp"
	"time"

	"github.com/fwojciec/newsdesk"
)

const (
	// DefaultPlaceholder is served when no image can be found for a post.
	DefaultPlaceholder = "/images/news-placeholder.jpg"

	// DefaultImageTimeout bounds each image lookup attempt.
	DefaultImageTimeout = 8 * time.Second
)

var markdownImagePattern = regexp.MustCompile(`!\[[^\]]*\]\((https?://[^)\s]+)\)`)

// Ensure ImageResolver implements newsdesk.ImageResolver at compile time.
var _ newsdesk.ImageResolver = (*ImageResolver)(nil)

// ImageResolver picks the image for an imported post. It prefers an image
// embedded in the extracted text, then asks each finder in order, then
// falls back to a placeholder.
type ImageResolver struct {
	Finders     []newsdesk.ImageFinder
	Timeout     time.Duration
	Placeholder string
}

// NewImageResolver returns an ImageResolver trying finders in order with
// DefaultImageTimeout per attempt.
func NewImageResolver(finders ...newsdesk.ImageFinder) *ImageResolver {
	return &ImageResolver{
		Finders:     finders,
		Timeout:     DefaultImageTimeout,
		Placeholder: DefaultPlaceholder,
	}
}

// ResolveImage returns an image URL for the post and never fails.
// Finders run one at a time; an error or timeout moves on to the next.
func (r *ImageResolver) ResolveImage(ctx context.Context, raw string, sourceURL string) string {
	if u := MarkdownImage(raw); u != "" {
		return u
	}

	for _, finder := range r.Finders {
		if ctx.Err() != nil {
			break
		}
		if u, err := r.find(ctx, finder, sourceURL); err == nil && u != "" {
			return u
		}
	}

	if r.Placeholder == "" {
		return DefaultPlaceholder
	}
	return r.Placeholder
}

func (r *ImageResolver) find(ctx context.Context, finder newsdesk.ImageFinder, sourceURL string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultImageTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return finder.FindImage(ctx, sourceURL)
}

// MarkdownImage returns the URL of the first markdown image in raw, or "".
func MarkdownImage(raw string) string {
	if m := markdownImagePattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return ""
}

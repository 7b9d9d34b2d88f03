package newsdesk

import "context"

// ImportedPost is the draft produced by importing a social post.
// It is a transient value: nothing is stored until the operator confirms
// the draft and it is turned into a NewsItem.
type ImportedPost struct {
	Title     string `json:"title"`
	Content   string `json:"content"` // HTML paragraphs joined by newlines
	Excerpt   string `json:"excerpt"` // plain text
	ImageURL  string `json:"imageUrl"`
	SourceURL string `json:"sourceUrl"`
	Author    string `json:"author,omitempty"`
}

// NewsItem returns an unsaved news item populated from the post.
func (p *ImportedPost) NewsItem() *NewsItem {
	return &NewsItem{
		Title:     p.Title,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		ImageURL:  p.ImageURL,
		SourceURL: p.SourceURL,
		Author:    p.Author,
	}
}

// Importer turns the URL of a public social post into a news draft.
type Importer interface {
	// Import fetches and reconstructs the post.
	// Returns EINVALID for unsupported URLs without touching the network,
	// EFETCH when the post could not be fetched and EPARSE when no article
	// could be reconstructed from the response.
	Import(ctx context.Context, url string) (*ImportedPost, error)
}

// Fetcher retrieves the body of a URL as text.
type Fetcher interface {
	// Fetch issues a GET and returns the response body.
	// Non-success statuses are reported as EFETCH.
	Fetch(ctx context.Context, url string) (string, error)
}

// ImageResolver picks a representative image for an imported post.
type ImageResolver interface {
	// ResolveImage never fails: when nothing better is found it returns a
	// placeholder path.
	ResolveImage(ctx context.Context, raw string, sourceURL string) string
}

// ImageFinder is a single strategy for looking up the image of a page.
type ImageFinder interface {
	// FindImage returns an absolute image URL for the page at sourceURL.
	// Returns ENOTFOUND if the page declares no image.
	FindImage(ctx context.Context, sourceURL string) (string, error)

	// Name identifies the strategy in logs.
	Name() string
}

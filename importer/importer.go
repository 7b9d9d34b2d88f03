// Package importer turns public LinkedIn posts into news drafts.
// It fetches the post through a reader proxy that renders pages as text,
// filters platform noise and rebuilds the article and its image.
package importer

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/newsdesk"
)

// DefaultReaderURL is the text-rendering proxy the post is fetched through.
const DefaultReaderURL = "https://r.jina.ai/"

var errEmptyArticle = errors.New("no article content found in response")

// Ensure Importer implements newsdesk.Importer at compile time.
var _ newsdesk.Importer = (*Importer)(nil)

// Importer fetches a post through the reader proxy and reconstructs it.
type Importer struct {
	Fetcher       newsdesk.Fetcher
	Images        newsdesk.ImageResolver
	Reconstructor *Reconstructor

	// ReaderURL is the proxy prefix. Defaults to DefaultReaderURL.
	ReaderURL string
}

// NewImporter creates an Importer with the default reader proxy.
func NewImporter(fetcher newsdesk.Fetcher, images newsdesk.ImageResolver, reconstructor *Reconstructor) *Importer {
	return &Importer{
		Fetcher:       fetcher,
		Images:        images,
		Reconstructor: reconstructor,
		ReaderURL:     DefaultReaderURL,
	}
}

// Import fetches and reconstructs the post at postURL.
// The fetch is attempted once. Failures after validation carry
// newsdesk.ImportFailedMessage and wrap the cause.
func (i *Importer) Import(ctx context.Context, postURL string) (*newsdesk.ImportedPost, error) {
	if err := newsdesk.ValidatePostURL(postURL); err != nil {
		return nil, err
	}
	sourceURL := "https://" + newsdesk.StripScheme(postURL)

	raw, err := i.Fetcher.Fetch(ctx, ReaderURL(i.ReaderURL, sourceURL))
	if err != nil {
		return nil, newsdesk.WrapError(newsdesk.EFETCH, err, newsdesk.ImportFailedMessage)
	}

	reconstructor := i.Reconstructor
	if reconstructor == nil {
		reconstructor = NewReconstructor(newsdesk.DefaultNoisePatterns())
	}
	article := reconstructor.Reconstruct(raw)
	if article.Content == "" {
		return nil, newsdesk.WrapError(newsdesk.EPARSE, errEmptyArticle, newsdesk.ImportFailedMessage)
	}

	imageURL := DefaultPlaceholder
	if i.Images != nil {
		imageURL = i.Images.ResolveImage(ctx, raw, sourceURL)
	}

	return &newsdesk.ImportedPost{
		Title:     article.Title,
		Content:   article.Content,
		Excerpt:   Excerpt(article.Content),
		ImageURL:  imageURL,
		SourceURL: sourceURL,
		Author:    article.Author,
	}, nil
}

// ReaderURL builds the proxy URL that renders target as text.
func ReaderURL(readerURL, target string) string {
	if readerURL == "" {
		readerURL = DefaultReaderURL
	}
	if !strings.HasSuffix(readerURL, "/") {
		readerURL += "/"
	}
	return readerURL + "https://" + newsdesk.StripScheme(target)
}

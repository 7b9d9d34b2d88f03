package mock

import (
	"context"
	"io"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.ImageResolver = (*ImageResolver)(nil)

// ImageResolver is a mock implementation of newsdesk.ImageResolver.
type ImageResolver struct {
	ResolveImageFn func(ctx context.Context, raw string, sourceURL string) string
}

func (r *ImageResolver) ResolveImage(ctx context.Context, raw string, sourceURL string) string {
	return r.ResolveImageFn(ctx, raw, sourceURL)
}

var _ newsdesk.ImageFinder = (*ImageFinder)(nil)

// ImageFinder is a mock implementation of newsdesk.ImageFinder.
type ImageFinder struct {
	FindImageFn func(ctx context.Context, sourceURL string) (string, error)
	NameFn      func() string
}

func (f *ImageFinder) FindImage(ctx context.Context, sourceURL string) (string, error) {
	return f.FindImageFn(ctx, sourceURL)
}

func (f *ImageFinder) Name() string {
	if f.NameFn == nil {
		return "mock"
	}
	return f.NameFn()
}

var _ newsdesk.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of newsdesk.ImageStore.
type ImageStore struct {
	SaveImageFn func(ctx context.Context, name string, r io.Reader) (string, error)
}

func (s *ImageStore) SaveImage(ctx context.Context, name string, r io.Reader) (string, error) {
	return s.SaveImageFn(ctx, name, r)
}

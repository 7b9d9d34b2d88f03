package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.Importer = (*Importer)(nil)

// Importer is a mock implementation of newsdesk.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, url string) (*newsdesk.ImportedPost, error)
}

func (i *Importer) Import(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
	return i.ImportFn(ctx, url)
}

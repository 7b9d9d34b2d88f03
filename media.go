package newsdesk

import (
	"context"
	"io"
)

// ImageStore stores uploaded images and returns the URL they are served from.
type ImageStore interface {
	// SaveImage stores the image read from r. The name is only used to
	// derive the file extension.
	// Returns EINVALID for empty or unsupported uploads.
	SaveImage(ctx context.Context, name string, r io.Reader) (url string, err error)
}

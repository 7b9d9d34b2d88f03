package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsdesk"
)

// MaxImageSize caps uploaded images.
const MaxImageSize = 8 << 20

// imageExtensions lists accepted image types.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Ensure ImageStore implements newsdesk.ImageStore at compile time.
var _ newsdesk.ImageStore = (*ImageStore)(nil)

// ImageStore saves images to a directory served under a public URL prefix.
// Files are named after a hash of their content, so saving the same image
// twice yields the same URL.
type ImageStore struct {
	dir     string
	baseURL string
}

// NewImageStore creates an ImageStore writing to dir and returning URLs
// under baseURL, e.g. "/media".
func NewImageStore(dir, baseURL string) *ImageStore {
	return &ImageStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// SaveImage writes the image read from r and returns its public URL.
func (s *ImageStore) SaveImage(ctx context.Context, name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if !imageExtensions[ext] {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "unsupported image type %q", ext)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "empty image upload")
	}
	if len(data) > MaxImageSize {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "image larger than %d bytes", MaxImageSize)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%016x%s", xxhash.Sum64(data), ext)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(s.dir, filename), bytes.NewReader(data)); err != nil {
		return "", err
	}

	return s.baseURL + "/" + filename, nil
}

// writeFile writes r to path through a temporary file so readers never
// see a partial image.
func writeFile(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

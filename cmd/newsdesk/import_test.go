package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/newsdesk"
	main "github.com/fwojciec/newsdesk/cmd/newsdesk"
	"github.com/fwojciec/newsdesk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(url string) *newsdesk.ImportedPost {
	return &newsdesk.ImportedPost{
		Title:     "My Article",
		Content:   "<p>Hello world.</p>",
		Excerpt:   "Hello world.",
		ImageURL:  "/images/news-placeholder.jpg",
		SourceURL: url,
		Author:    "Jane Doe",
	}
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	const postURL = "https://www.linkedin.com/posts/jane_abc"

	t.Run("prints draft without saving", func(t *testing.T) {
		t.Parallel()

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return draft(url), nil
			},
		}
		news := &mock.NewsService{
			CreateNewsItemFn: func(ctx context.Context, item *newsdesk.NewsItem) error {
				t.Fatal("should not save")
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Importer: imp, News: news}

		err := (&main.ImportCmd{URLs: []string{postURL}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Title:   My Article")
		assert.Contains(t, stdout.String(), "<p>Hello world.</p>")
		assert.Contains(t, stderr.String(), "--save")
	})

	t.Run("saves the edited draft", func(t *testing.T) {
		t.Parallel()

		var saved *newsdesk.NewsItem
		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return draft(url), nil
			},
		}
		news := &mock.NewsService{
			CreateNewsItemFn: func(ctx context.Context, item *newsdesk.NewsItem) error {
				item.ID = "news-1"
				item.Slug = "better-title"
				saved = item
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Importer: imp, News: news}

		cmd := &main.ImportCmd{
			URLs:    []string{postURL},
			Save:    true,
			Title:   "Better Title",
			Excerpt: "Short.",
			Image:   "https://cdn.test/cover.jpg",
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "Better Title", saved.Title)
		assert.Equal(t, "Short.", saved.Excerpt)
		assert.Equal(t, "https://cdn.test/cover.jpg", saved.ImageURL)
		assert.Equal(t, postURL, saved.SourceURL)
		assert.Equal(t, "Jane Doe", saved.Author)
		assert.Contains(t, stdout.String(), "Saved news item news-1")
	})

	t.Run("uploads a local replacement image", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "cover.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0644))

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return draft(url), nil
			},
		}
		images := &mock.ImageStore{
			SaveImageFn: func(ctx context.Context, name string, r io.Reader) (string, error) {
				assert.Equal(t, "cover.png", name)
				data, _ := io.ReadAll(r)
				assert.Equal(t, "png", string(data))
				return "/media/abc.png", nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Importer: imp, Images: images}

		require.NoError(t, (&main.ImportCmd{URLs: []string{postURL}, Image: path}).Run(deps))
		assert.Contains(t, stdout.String(), "Image:   /media/abc.png")
	})

	t.Run("prints json", func(t *testing.T) {
		t.Parallel()

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return draft(url), nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Importer: imp}

		require.NoError(t, (&main.ImportCmd{URLs: []string{postURL}, JSON: true}).Run(deps))

		var got newsdesk.ImportedPost
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "My Article", got.Title)
		assert.Equal(t, "<p>Hello world.</p>", got.Content)
	})

	t.Run("prints the user-facing message on failure", func(t *testing.T) {
		t.Parallel()

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return nil, newsdesk.Errorf(newsdesk.EFETCH, newsdesk.ImportFailedMessage)
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Importer: imp}

		err := (&main.ImportCmd{URLs: []string{postURL}}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: "+newsdesk.ImportFailedMessage)
	})

	t.Run("reports already imported posts", func(t *testing.T) {
		t.Parallel()

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return draft(url), nil
			},
		}
		news := &mock.NewsService{
			CreateNewsItemFn: func(ctx context.Context, item *newsdesk.NewsItem) error {
				return newsdesk.Errorf(newsdesk.ECONFLICT, "post was already imported")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Importer: imp, News: news}

		err := (&main.ImportCmd{URLs: []string{postURL}, Save: true}).Run(deps)

		assert.Equal(t, newsdesk.ECONFLICT, newsdesk.ErrorCode(err))
		assert.Contains(t, stderr.String(), "already imported")
	})

	t.Run("rejects overrides with several urls", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.ImportCmd{URLs: []string{postURL, postURL + "2"}, Title: "x"}).Run(deps)

		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
		assert.Contains(t, stderr.String(), "single URL")
	})

	t.Run("imports several urls and saves the successes", func(t *testing.T) {
		t.Parallel()

		imp := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				if strings.HasSuffix(url, "bad") {
					return nil, newsdesk.Errorf(newsdesk.EPARSE, newsdesk.ImportFailedMessage)
				}
				return draft(url), nil
			},
		}
		var saved []string
		news := &mock.NewsService{
			CreateNewsItemFn: func(ctx context.Context, item *newsdesk.NewsItem) error {
				saved = append(saved, item.SourceURL)
				return nil
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Importer: imp, News: news}

		err := (&main.ImportCmd{URLs: []string{postURL + "_good", postURL + "_bad"}, Save: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Equal(t, []string{postURL + "_good"}, saved)
		assert.Contains(t, stderr.String(), "FAIL  "+postURL+"_bad")
	})
}

package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/mock"
	ndslog "github.com/fwojciec/newsdesk/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("logs imported post", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &newsdesk.ImportedPost{Title: "My Article", Author: "Jane Doe", ImageURL: "/images/news-placeholder.jpg"}
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return want, nil
			},
		}

		post, err := ndslog.NewLoggingImporter(inner, logger).Import(context.Background(), "https://www.linkedin.com/posts/x")

		require.NoError(t, err)
		assert.Same(t, want, post)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "title=\"My Article\"")
		assert.Contains(t, output, "author=\"Jane Doe\"")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures with error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) (*newsdesk.ImportedPost, error) {
				return nil, newsdesk.Errorf(newsdesk.EFETCH, newsdesk.ImportFailedMessage)
			},
		}

		_, err := ndslog.NewLoggingImporter(inner, logger).Import(context.Background(), "https://www.linkedin.com/posts/x")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=fetch")
	})
}

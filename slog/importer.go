package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingImporter implements newsdesk.Importer.
var _ newsdesk.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with logging.
type LoggingImporter struct {
	next   newsdesk.Importer
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next newsdesk.Importer, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, logger: logger}
}

// Import delegates to the wrapped importer and logs the outcome.
// Failures are logged at warn level with their error code.
func (i *LoggingImporter) Import(ctx context.Context, url string) (post *newsdesk.ImportedPost, err error) {
	defer func(begin time.Time) {
		if err != nil {
			i.logger.Warn("import",
				"url", url,
				"code", newsdesk.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		i.logger.Info("import",
			"url", url,
			"title", post.Title,
			"author", post.Author,
			"image", post.ImageURL,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return i.next.Import(ctx, url)
}

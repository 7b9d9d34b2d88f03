package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingImageFinder implements newsdesk.ImageFinder.
var _ newsdesk.ImageFinder = (*LoggingImageFinder)(nil)

// LoggingImageFinder wraps an ImageFinder with debug logging.
type LoggingImageFinder struct {
	next   newsdesk.ImageFinder
	logger *slog.Logger
}

// NewLoggingImageFinder creates a new LoggingImageFinder.
func NewLoggingImageFinder(next newsdesk.ImageFinder, logger *slog.Logger) *LoggingImageFinder {
	return &LoggingImageFinder{next: next, logger: logger}
}

// WrapImageFinders decorates every finder in finders.
func WrapImageFinders(finders []newsdesk.ImageFinder, logger *slog.Logger) []newsdesk.ImageFinder {
	wrapped := make([]newsdesk.ImageFinder, len(finders))
	for i, f := range finders {
		wrapped[i] = NewLoggingImageFinder(f, logger)
	}
	return wrapped
}

// Name returns the wrapped finder's name.
func (f *LoggingImageFinder) Name() string {
	return f.next.Name()
}

// FindImage delegates to the wrapped finder and logs the attempt.
func (f *LoggingImageFinder) FindImage(ctx context.Context, sourceURL string) (image string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("image lookup",
			"finder", f.next.Name(),
			"url", sourceURL,
			"image", image,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindImage(ctx, sourceURL)
}

package importer

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/newsdesk"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BatchResult holds the outcome of importing a single URL.
type BatchResult struct {
	URL  string
	Post *newsdesk.ImportedPost
	Err  error
}

// Batch imports several posts. Imports are independent: one failure does
// not stop the others.
type Batch struct {
	Importer newsdesk.Importer

	// Limiter throttles calls to the reader proxy. Nil disables throttling.
	Limiter *rate.Limiter

	// Concurrency caps in-flight imports. Defaults to 2.
	Concurrency int
}

// NewBatch returns a Batch allowing rps proxy calls per second.
func NewBatch(importer newsdesk.Importer, rps float64, concurrency int) *Batch {
	return &Batch{
		Importer:    importer,
		Limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		Concurrency: concurrency,
	}
}

// ImportAll imports urls and returns one result per distinct URL in input
// order. progress, if set, is called once per result as imports finish.
func (b *Batch) ImportAll(ctx context.Context, urls []string, progress func(BatchResult)) []BatchResult {
	urls = dedupeURLs(urls)
	results := make([]BatchResult, len(urls))

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, u := range urls {
		g.Go(func() error {
			result := BatchResult{URL: u}
			if b.Limiter != nil {
				if err := b.Limiter.Wait(ctx); err != nil {
					result.Err = err
				}
			}
			if result.Err == nil {
				result.Post, result.Err = b.Importer.Import(ctx, u)
			}
			results[i] = result

			if progress != nil {
				mu.Lock()
				progress(result)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// dedupeURLs drops blank entries and repeats of the same post, ignoring
// scheme and case.
func dedupeURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSuffix(newsdesk.StripScheme(u), "/"))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, u)
	}
	return out
}

package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.NewsService = (*NewsService)(nil)

// NewsService is a mock implementation of newsdesk.NewsService.
type NewsService struct {
	CreateNewsItemFn   func(ctx context.Context, item *newsdesk.NewsItem) error
	FindNewsItemByIDFn func(ctx context.Context, id string) (*newsdesk.NewsItem, error)
	FindNewsItemsFn    func(ctx context.Context, filter newsdesk.NewsFilter) ([]*newsdesk.NewsItem, error)
	UpdateNewsItemFn   func(ctx context.Context, id string, upd newsdesk.NewsUpdate) (*newsdesk.NewsItem, error)
	DeleteNewsItemFn   func(ctx context.Context, id string) error
}

func (s *NewsService) CreateNewsItem(ctx context.Context, item *newsdesk.NewsItem) error {
	return s.CreateNewsItemFn(ctx, item)
}

func (s *NewsService) FindNewsItemByID(ctx context.Context, id string) (*newsdesk.NewsItem, error) {
	return s.FindNewsItemByIDFn(ctx, id)
}

func (s *NewsService) FindNewsItems(ctx context.Context, filter newsdesk.NewsFilter) ([]*newsdesk.NewsItem, error) {
	return s.FindNewsItemsFn(ctx, filter)
}

func (s *NewsService) UpdateNewsItem(ctx context.Context, id string, upd newsdesk.NewsUpdate) (*newsdesk.NewsItem, error) {
	return s.UpdateNewsItemFn(ctx, id, upd)
}

func (s *NewsService) DeleteNewsItem(ctx context.Context, id string) error {
	return s.DeleteNewsItemFn(ctx, id)
}

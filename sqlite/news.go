package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsdesk.NewsService = (*NewsService)(nil)

const newsColumns = "id, slug, title, content, excerpt, image_url, source_url, author, content_hash, published_at, created_at, updated_at"

// NewsService implements newsdesk.NewsService using SQLite.
type NewsService struct {
	db *DB
}

// NewNewsService creates a new NewsService.
func NewNewsService(db *DB) *NewsService {
	return &NewsService{db: db}
}

// CreateNewsItem creates a new news item with a generated ID, slug and
// content hash. PublishedAt defaults to now.
func (s *NewsService) CreateNewsItem(ctx context.Context, item *newsdesk.NewsItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.SourceURL != "" {
		var count int
		if err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM news_items WHERE source_url = ?", item.SourceURL,
		).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return newsdesk.Errorf(newsdesk.ECONFLICT, "post %s was already imported", item.SourceURL)
		}
	}

	slug, err := uniqueSlug(ctx, s.db, "news_items", item.Title, "news", "")
	if err != nil {
		return err
	}

	item.ID = uuid.New().String()
	item.Slug = slug
	item.ContentHash = hashContent(item.Content)
	now := time.Now().UTC().Truncate(time.Second)
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.PublishedAt.IsZero() {
		item.PublishedAt = now
	}
	item.PublishedAt = item.PublishedAt.UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO news_items (`+newsColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Slug, item.Title, item.Content, item.Excerpt, item.ImageURL, item.SourceURL,
		item.Author, item.ContentHash, item.PublishedAt.Format(time.RFC3339),
		item.CreatedAt.Format(time.RFC3339), item.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindNewsItemByID retrieves a news item by ID.
func (s *NewsService) FindNewsItemByID(ctx context.Context, id string) (*newsdesk.NewsItem, error) {
	item, err := scanNewsItem(s.db.QueryRowContext(ctx,
		"SELECT "+newsColumns+" FROM news_items WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, newsdesk.Errorf(newsdesk.ENOTFOUND, "news item not found")
	}
	return item, err
}

// FindNewsItems retrieves news items matching the filter, newest first.
func (s *NewsService) FindNewsItems(ctx context.Context, filter newsdesk.NewsFilter) ([]*newsdesk.NewsItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + newsColumns + " FROM news_items WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY published_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*newsdesk.NewsItem
	for rows.Next() {
		item, err := scanNewsItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpdateNewsItem updates an existing news item. A new title regenerates
// the slug; new content refreshes the hash.
func (s *NewsService) UpdateNewsItem(ctx context.Context, id string, upd newsdesk.NewsUpdate) (*newsdesk.NewsItem, error) {
	item, err := s.FindNewsItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := upd.Title != nil && *upd.Title != item.Title
	if upd.Title != nil {
		item.Title = *upd.Title
	}
	if upd.Content != nil {
		item.Content = *upd.Content
	}
	if upd.Excerpt != nil {
		item.Excerpt = *upd.Excerpt
	}
	if upd.ImageURL != nil {
		item.ImageURL = *upd.ImageURL
	}
	if upd.Author != nil {
		item.Author = *upd.Author
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if titleChanged {
		if item.Slug, err = uniqueSlug(ctx, s.db, "news_items", item.Title, "news", id); err != nil {
			return nil, err
		}
	}
	item.ContentHash = hashContent(item.Content)
	item.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE news_items
		SET slug = ?, title = ?, content = ?, excerpt = ?, image_url = ?, author = ?, content_hash = ?, updated_at = ?
		WHERE id = ?
	`, item.Slug, item.Title, item.Content, item.Excerpt, item.ImageURL, item.Author, item.ContentHash,
		item.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteNewsItem permanently removes a news item.
func (s *NewsService) DeleteNewsItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM news_items WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsdesk.Errorf(newsdesk.ENOTFOUND, "news item not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNewsItem(row scanner) (*newsdesk.NewsItem, error) {
	var item newsdesk.NewsItem
	var publishedAt, createdAt, updatedAt string

	if err := row.Scan(&item.ID, &item.Slug, &item.Title, &item.Content, &item.Excerpt, &item.ImageURL,
		&item.SourceURL, &item.Author, &item.ContentHash, &publishedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if item.PublishedAt, err = parseRFC3339(publishedAt, "published_at"); err != nil {
		return nil, err
	}
	if item.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &item, nil
}

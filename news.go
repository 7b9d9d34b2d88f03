package newsdesk

import (
	"context"
	"time"
)

// NewsItem represents an article in the news section of the site.
type NewsItem struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // HTML
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	Author      string    `json:"author,omitempty"`
	ContentHash string    `json:"contentHash"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the news item contains invalid fields.
func (n *NewsItem) Validate() error {
	if n.Title == "" {
		return Errorf(EINVALID, "news title required")
	}
	if n.Content == "" {
		return Errorf(EINVALID, "news content required")
	}
	return nil
}

// NewsService represents a service for managing news items.
type NewsService interface {
	// CreateNewsItem creates a new news item.
	// Returns ECONFLICT if an item with the same source URL exists.
	CreateNewsItem(ctx context.Context, item *NewsItem) error

	// FindNewsItemByID retrieves a news item by ID.
	// Returns ENOTFOUND if the item does not exist.
	FindNewsItemByID(ctx context.Context, id string) (*NewsItem, error)

	// FindNewsItems retrieves news items matching the filter,
	// most recently published first.
	FindNewsItems(ctx context.Context, filter NewsFilter) ([]*NewsItem, error)

	// UpdateNewsItem updates an existing news item.
	// Returns ENOTFOUND if the item does not exist.
	UpdateNewsItem(ctx context.Context, id string, upd NewsUpdate) (*NewsItem, error)

	// DeleteNewsItem permanently removes a news item.
	// Returns ENOTFOUND if the item does not exist.
	DeleteNewsItem(ctx context.Context, id string) error
}

// NewsFilter represents a filter for FindNewsItems.
type NewsFilter struct {
	ID        *string `json:"id"`
	Slug      *string `json:"slug"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NewsUpdate represents fields that can be updated on a news item.
type NewsUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	ImageURL *string `json:"imageUrl"`
	Author   *string `json:"author"`
}

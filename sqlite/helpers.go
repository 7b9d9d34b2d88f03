package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsdesk"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashContent returns the hex xxHash of content.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// uniqueSlug returns a slug for title not yet used in table, appending a
// numeric suffix on collision. excludeID is ignored when checking so a row
// can keep its own slug.
func uniqueSlug(ctx context.Context, db *DB, table, title, fallback, excludeID string) (string, error) {
	base := newsdesk.Slugify(title)
	if base == "" {
		base = fallback
	}

	slug := base
	for n := 2; ; n++ {
		var count int
		err := db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM "+table+" WHERE slug = ? AND id != ?", slug, excludeID,
		).Scan(&count)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsdesk.ProjectService = (*ProjectService)(nil)

const projectColumns = "id, slug, title, client, summary, content, image_url, tags, created_at, updated_at"

// ProjectService implements newsdesk.ProjectService using SQLite.
type ProjectService struct {
	db *DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(ctx context.Context, project *newsdesk.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	slug, err := uniqueSlug(ctx, s.db, "projects", project.Title, "project", "")
	if err != nil {
		return err
	}
	tags, err := encodeTags(project.Tags)
	if err != nil {
		return err
	}

	project.ID = uuid.New().String()
	project.Slug = slug
	now := time.Now().UTC().Truncate(time.Second)
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, project.ID, project.Slug, project.Title, project.Client, project.Summary, project.Content,
		project.ImageURL, tags, project.CreatedAt.Format(time.RFC3339), project.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindProjectByID retrieves a project by ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*newsdesk.Project, error) {
	project, err := scanProject(s.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, newsdesk.Errorf(newsdesk.ENOTFOUND, "project not found")
	}
	return project, err
}

// FindProjects retrieves projects matching the filter.
func (s *ProjectService) FindProjects(ctx context.Context, filter newsdesk.ProjectFilter) ([]*newsdesk.Project, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + projectColumns + " FROM projects WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*newsdesk.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateProject updates an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd newsdesk.ProjectUpdate) (*newsdesk.Project, error) {
	project, err := s.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := upd.Title != nil && *upd.Title != project.Title
	if upd.Title != nil {
		project.Title = *upd.Title
	}
	if upd.Client != nil {
		project.Client = *upd.Client
	}
	if upd.Summary != nil {
		project.Summary = *upd.Summary
	}
	if upd.Content != nil {
		project.Content = *upd.Content
	}
	if upd.ImageURL != nil {
		project.ImageURL = *upd.ImageURL
	}
	if upd.Tags != nil {
		project.Tags = *upd.Tags
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if titleChanged {
		if project.Slug, err = uniqueSlug(ctx, s.db, "projects", project.Title, "project", id); err != nil {
			return nil, err
		}
	}
	tags, err := encodeTags(project.Tags)
	if err != nil {
		return nil, err
	}
	project.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects
		SET slug = ?, title = ?, client = ?, summary = ?, content = ?, image_url = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, project.Slug, project.Title, project.Client, project.Summary, project.Content, project.ImageURL,
		tags, project.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject permanently removes a project.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsdesk.Errorf(newsdesk.ENOTFOUND, "project not found")
	}

	return nil
}

func scanProject(row scanner) (*newsdesk.Project, error) {
	var project newsdesk.Project
	var tags, createdAt, updatedAt string

	if err := row.Scan(&project.ID, &project.Slug, &project.Title, &project.Client, &project.Summary,
		&project.Content, &project.ImageURL, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &project.Tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}

	var err error
	if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &project, nil
}

// encodeTags stores tags as a JSON array; nil is stored as [].
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

package newsdesk

import (
	"context"
	"time"
)

// Project represents a consultancy engagement shown in the portfolio.
type Project struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Client    string    `json:"client"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"` // HTML
	ImageURL  string    `json:"imageUrl"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the project contains invalid fields.
func (p *Project) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "project title required")
	}
	return nil
}

// ProjectService represents a service for managing projects.
type ProjectService interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, project *Project) error

	// FindProjectByID retrieves a project by ID.
	// Returns ENOTFOUND if project does not exist.
	FindProjectByID(ctx context.Context, id string) (*Project, error)

	// FindProjects retrieves projects matching the filter.
	FindProjects(ctx context.Context, filter ProjectFilter) ([]*Project, error)

	// UpdateProject updates an existing project.
	// Returns ENOTFOUND if project does not exist.
	UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (*Project, error)

	// DeleteProject permanently removes a project.
	// Returns ENOTFOUND if project does not exist.
	DeleteProject(ctx context.Context, id string) error
}

// ProjectFilter represents a filter for FindProjects.
type ProjectFilter struct {
	ID   *string `json:"id"`
	Slug *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProjectUpdate represents fields that can be updated on a project.
type ProjectUpdate struct {
	Title    *string   `json:"title"`
	Client   *string   `json:"client"`
	Summary  *string   `json:"summary"`
	Content  *string   `json:"content"`
	ImageURL *string   `json:"imageUrl"`
	Tags     *[]string `json:"tags"`
}

package mock

import (
	"context"

	"github.com/fwojciec/newsdesk"
)

var _ newsdesk.ProjectService = (*ProjectService)(nil)

// ProjectService is a mock implementation of newsdesk.ProjectService.
type ProjectService struct {
	CreateProjectFn   func(ctx context.Context, project *newsdesk.Project) error
	FindProjectByIDFn func(ctx context.Context, id string) (*newsdesk.Project, error)
	FindProjectsFn    func(ctx context.Context, filter newsdesk.ProjectFilter) ([]*newsdesk.Project, error)
	UpdateProjectFn   func(ctx context.Context, id string, upd newsdesk.ProjectUpdate) (*newsdesk.Project, error)
	DeleteProjectFn   func(ctx context.Context, id string) error
}

func (s *ProjectService) CreateProject(ctx context.Context, project *newsdesk.Project) error {
	return s.CreateProjectFn(ctx, project)
}

func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*newsdesk.Project, error) {
	return s.FindProjectByIDFn(ctx, id)
}

func (s *ProjectService) FindProjects(ctx context.Context, filter newsdesk.ProjectFilter) ([]*newsdesk.Project, error) {
	return s.FindProjectsFn(ctx, filter)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd newsdesk.ProjectUpdate) (*newsdesk.Project, error) {
	return s.UpdateProjectFn(ctx, id, upd)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.DeleteProjectFn(ctx, id)
}

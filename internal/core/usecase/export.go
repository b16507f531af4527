package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// ExportService renders a project's task list as a spreadsheet for the
// project owner.
type ExportService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	exporter ports.TaskExporter
}

func NewExportService(projects ports.ProjectRepository, tasks ports.TaskRepository, exporter ports.TaskExporter) *ExportService {
	return &ExportService{projects: projects, tasks: tasks, exporter: exporter}
}

func (s *ExportService) ExportProjectTasks(ctx context.Context, userID, projectID string) ([]byte, string, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	if project.OwnerID != userID {
		return nil, "", domain.WrapError(domain.ErrAccessDenied, "export project tasks",
			errors.New("project belongs to another user"))
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, "", fmt.Errorf("list project tasks: %w", err)
	}

	data, err := s.exporter.ExportXLSX(project, tasks)
	if err != nil {
		return nil, "", fmt.Errorf("render xlsx: %w", err)
	}
	filename := fmt.Sprintf("%s-tasks.xlsx", project.Name)
	return data, filename, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// TaskService covers direct task CRUD, separate from the extraction path.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

func (s *TaskService) Create(ctx context.Context, userID string, in domain.TaskDraft) (*domain.Task, error) {
	if in.Title == "" || in.ProjectID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create task",
			errors.New("title and project id are required"))
	}
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		ProjectID:      in.ProjectID,
		AssignedTo:     in.AssignedTo,
		AssignedBy:     userID,
		Status:         domain.TaskStatusTodo,
		Priority:       in.Priority,
		EstimatedHours: in.EstimatedHours,
		SkillsRequired: in.SkillsRequired,
		Source:         domain.TaskSourceManual,
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if task.SkillsRequired == nil {
		task.SkillsRequired = []string{}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("persist task: %w", err)
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	if projectID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "list tasks",
			errors.New("project id is required"))
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if !status.Valid() {
		return domain.WrapError(domain.ErrInvalidInput, "update task status",
			fmt.Errorf("unknown status %q", status))
	}
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return nil
}

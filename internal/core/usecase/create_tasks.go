package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// CreateTasksUseCase materializes extracted task candidates as independent
// task records. The created tasks keep only a provenance tag, no live link to
// the source document.
type CreateTasksUseCase struct {
	docs     ports.DocumentRepository
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	events   ports.EventPublisher
	logger   *slog.Logger
}

func NewCreateTasksUseCase(
	docs ports.DocumentRepository,
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	events ports.EventPublisher,
	logger *slog.Logger,
) *CreateTasksUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateTasksUseCase{docs: docs, tasks: tasks, projects: projects, events: events, logger: logger}
}

// CreateFromDocument copies the selected extracted tasks (all of them when
// selected is empty) into persisted tasks under the target project. Only the
// uploader of the source document may do this.
func (uc *CreateTasksUseCase) CreateFromDocument(
	ctx context.Context,
	userID, documentID, projectID string,
	selected []domain.ExtractedTask,
) ([]domain.Task, error) {
	if documentID == "" || projectID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create tasks from document",
			errors.New("document id and project id are required"))
	}

	doc, err := uc.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.UploadedBy != userID {
		return nil, domain.WrapError(domain.ErrAccessDenied, "create tasks from document",
			errors.New("document belongs to another user"))
	}
	if _, err := uc.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	source := selected
	if len(source) == 0 {
		source = doc.ExtractedTasks
	}

	now := time.Now().UTC()
	created := make([]domain.Task, 0, len(source))
	for _, et := range source {
		task := domain.Task{
			ID:             uuid.NewString(),
			Title:          et.Title,
			Description:    et.Description,
			ProjectID:      projectID,
			AssignedBy:     userID,
			Status:         domain.TaskStatusTodo,
			Priority:       et.Priority,
			EstimatedHours: et.EstimatedHours,
			SkillsRequired: et.SkillsRequired,
			Source:         domain.TaskSourceExtraction,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if task.Priority == "" {
			task.Priority = domain.PriorityMedium
		}
		if task.SkillsRequired == nil {
			task.SkillsRequired = []string{}
		}
		if err := uc.tasks.Create(ctx, &task); err != nil {
			return nil, fmt.Errorf("persist task %q: %w", task.Title, err)
		}
		created = append(created, task)
	}

	if uc.events != nil {
		if pubErr := uc.events.PublishTasksCreated(ctx, projectID, len(created)); pubErr != nil {
			uc.logger.Warn("tasks_created_event_failed", "project_id", projectID, "error", pubErr)
		}
	}

	uc.logger.Info("tasks_created_from_document",
		"document_id", documentID,
		"project_id", projectID,
		"count", len(created),
	)
	return created, nil
}

package ports

import (
	"context"
	"io"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// DocumentIngestor runs the upload→extract→persist pipeline synchronously.
type DocumentIngestor interface {
	Upload(ctx context.Context, userID, filename string, size int64, body io.Reader) (*domain.Document, error)
}

// DocumentService is the inbound contract for document reads and deletion.
type DocumentService interface {
	List(ctx context.Context, userID string) ([]domain.Document, error)
	Get(ctx context.Context, userID, documentID string) (*domain.Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}

// TaskMaterializer turns extracted task candidates into persisted tasks.
type TaskMaterializer interface {
	CreateFromDocument(ctx context.Context, userID, documentID, projectID string, selected []domain.ExtractedTask) ([]domain.Task, error)
}

// TaskPrioritizer scores task-like records, optionally persisting the scores.
type TaskPrioritizer interface {
	Prioritize(ctx context.Context, tasks []domain.TaskRef, persist bool) ([]domain.PrioritizedTask, error)
}

// TaskManager is the inbound contract for direct task CRUD.
type TaskManager interface {
	Create(ctx context.Context, userID string, draft domain.TaskDraft) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
}

// ProjectManager creates and reads project records.
type ProjectManager interface {
	Create(ctx context.Context, userID, name, description string) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
}

// ProjectTaskExporter renders a project's tasks as a downloadable workbook.
type ProjectTaskExporter interface {
	ExportProjectTasks(ctx context.Context, userID, projectID string) (data []byte, filename string, err error)
}

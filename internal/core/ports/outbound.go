package ports

import (
	"context"
	"io"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

// DocumentRepository persists and reads processed document records.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListByUploader(ctx context.Context, userID string) ([]domain.Document, error)
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists independent task records.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
	SaveScores(ctx context.Context, results []domain.PriorityResult, scoredAt time.Time) error
	ListByIDs(ctx context.Context, ids []string) ([]domain.Task, error)
}

// ProjectRepository reads project records for existence and ownership checks.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

// UserDirectory resolves bearer tokens to users.
type UserDirectory interface {
	GetByToken(ctx context.Context, token string) (*domain.User, error)
}

// UploadSpool stores an uploaded file in a scoped temp location. Remove must
// be called on every exit path of the extraction stage.
type UploadSpool interface {
	Save(ctx context.Context, filename string, data io.Reader) (path string, err error)
	Remove(path string) error
}

// TextExtractor turns a spooled upload into normalized text, or fails with a
// typed extraction error.
type TextExtractor interface {
	Extract(ctx context.Context, path string, fileType domain.FileType) (string, error)
}

// RequirementTagger reports which requirement categories a text mentions.
type RequirementTagger interface {
	Tags(text string) []string
}

// TaskParser extracts numbered task candidates from normalized text.
type TaskParser interface {
	Parse(text string) []domain.ExtractedTask
}

// PriorityModel is the external text-generation call used for scoring. A
// failed call is absorbed by the caller's heuristic fallback, never surfaced.
type PriorityModel interface {
	ScoreTasks(ctx context.Context, tasks []domain.TaskRef) ([]domain.PriorityResult, error)
}

// EventPublisher emits fire-and-forget domain events for integrations.
type EventPublisher interface {
	PublishDocumentProcessed(ctx context.Context, documentID string) error
	PublishTasksCreated(ctx context.Context, projectID string, count int) error
	Close()
}

// TaskExporter renders a task list as a spreadsheet.
type TaskExporter interface {
	ExportXLSX(project *domain.Project, tasks []domain.Task) ([]byte, error)
}

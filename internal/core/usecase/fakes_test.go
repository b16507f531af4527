package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type fakeDocumentRepo struct {
	mu      sync.Mutex
	docs    map[string]*domain.Document
	failAll bool
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*domain.Document{}}
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *domain.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("repo down")
	}
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id string) (*domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrNotFound, "get document", errors.New("no such document"))
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDocumentRepo) ListByUploader(_ context.Context, userID string) ([]domain.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Document
	for _, doc := range f.docs {
		if doc.UploadedBy == userID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

type fakeTaskRepo struct {
	mu       sync.Mutex
	tasks    map[string]*domain.Task
	order    []string
	saved    []domain.PriorityResult
	savedAt  time.Time
	failSave bool
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*domain.Task{}}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *task
	f.tasks[task.ID] = &cp
	f.order = append(f.order, task.ID)
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrNotFound, "get task", errors.New("no such task"))
	}
	cp := *task
	return &cp, nil
}

func (f *fakeTaskRepo) ListByProject(_ context.Context, projectID string) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, id := range f.order {
		if f.tasks[id].ProjectID == projectID {
			out = append(out, *f.tasks[id])
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListRecent(_ context.Context, limit int) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.tasks[f.order[i]])
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return domain.WrapError(domain.ErrNotFound, "update task status", errors.New("no such task"))
	}
	task.Status = status
	return nil
}

func (f *fakeTaskRepo) SaveScores(_ context.Context, results []domain.PriorityResult, scoredAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return errors.New("save failed")
	}
	f.saved = append(f.saved, results...)
	f.savedAt = scoredAt
	for _, r := range results {
		if task, ok := f.tasks[r.ID]; ok {
			score := r.Score
			at := scoredAt
			task.AIScore = &score
			task.AIScoreReason = r.Reason
			task.AIScoredAt = &at
		}
	}
	return nil
}

func (f *fakeTaskRepo) ListByIDs(_ context.Context, ids []string) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Task
	for _, id := range ids {
		if task, ok := f.tasks[id]; ok {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]*domain.Project{}}
}

func (f *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *project
	f.projects[project.ID] = &cp
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	project, ok := f.projects[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrNotFound, "get project", errors.New("no such project"))
	}
	cp := *project
	return &cp, nil
}

type fakeSpool struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeSpool) Save(_ context.Context, filename string, data io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	_, _ = io.Copy(io.Discard, data)
	path := "/tmp/spool/" + filename
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeSpool) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, path)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, _ domain.FileType) (string, error) {
	return f.text, f.err
}

type fakeTagger struct{ tags []string }

func (f *fakeTagger) Tags(string) []string { return f.tags }

type fakeParser struct{ tasks []domain.ExtractedTask }

func (f *fakeParser) Parse(string) []domain.ExtractedTask { return f.tasks }

type fakeModel struct {
	results []domain.PriorityResult
	err     error
	calls   int
}

func (f *fakeModel) ScoreTasks(_ context.Context, _ []domain.TaskRef) ([]domain.PriorityResult, error) {
	f.calls++
	return f.results, f.err
}

type fakePublisher struct {
	mu        sync.Mutex
	processed []string
	created   []int
	err       error
}

func (f *fakePublisher) PublishDocumentProcessed(_ context.Context, documentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.processed = append(f.processed, documentID)
	return nil
}

func (f *fakePublisher) PublishTasksCreated(_ context.Context, _ string, count int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, count)
	return nil
}

func (f *fakePublisher) Close() {}

type fakeExporter struct {
	data []byte
	err  error
}

func (f *fakeExporter) ExportXLSX(*domain.Project, []domain.Task) ([]byte, error) {
	return f.data, f.err
}

package usecase

import (
	"context"
	"testing"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func createTasksFixture(t *testing.T) (*CreateTasksUseCase, *fakeDocumentRepo, *fakeTaskRepo, *fakePublisher) {
	t.Helper()
	docs := newFakeDocumentRepo()
	tasks := newFakeTaskRepo()
	projects := newFakeProjectRepo()
	events := &fakePublisher{}

	err := projects.Create(context.Background(), &domain.Project{ID: "proj-1", Name: "Rollout", OwnerID: "owner"})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	hours := 8
	err = docs.Create(context.Background(), &domain.Document{
		ID:         "doc-1",
		UploadedBy: "owner",
		Status:     domain.DocumentStatusProcessed,
		ExtractedTasks: []domain.ExtractedTask{
			{Number: 1, Title: "Fix login bug", Priority: domain.PriorityHigh, EstimatedHours: &hours, Source: "numbered_dot"},
			{Number: 2, Title: "Add export feature", Priority: domain.PriorityLow, Source: "numbered_dot"},
		},
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	return NewCreateTasksUseCase(docs, tasks, projects, events, discardLogger()), docs, tasks, events
}

func TestCreateFromDocumentAllExtracted(t *testing.T) {
	uc, _, tasks, events := createTasksFixture(t)

	created, err := uc.CreateFromDocument(context.Background(), "owner", "doc-1", "proj-1", nil)
	if err != nil {
		t.Fatalf("CreateFromDocument() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d tasks, want 2", len(created))
	}
	for _, task := range created {
		if task.Status != domain.TaskStatusTodo {
			t.Fatalf("task %q status = %s, want todo", task.Title, task.Status)
		}
		if task.Source != domain.TaskSourceExtraction {
			t.Fatalf("task %q source = %s, want %s", task.Title, task.Source, domain.TaskSourceExtraction)
		}
		if task.AssignedBy != "owner" {
			t.Fatalf("task %q assigned_by = %s, want owner", task.Title, task.AssignedBy)
		}
		if task.SkillsRequired == nil {
			t.Fatalf("task %q skills must be an empty slice, not nil", task.Title)
		}
	}
	if created[0].Priority != domain.PriorityHigh || created[1].Priority != domain.PriorityLow {
		t.Fatalf("priorities = %s/%s, want high/low", created[0].Priority, created[1].Priority)
	}
	if created[0].EstimatedHours == nil || *created[0].EstimatedHours != 8 {
		t.Fatalf("estimated hours not carried over: %v", created[0].EstimatedHours)
	}
	if tasks.count() != 2 {
		t.Fatalf("repo holds %d tasks, want 2", tasks.count())
	}
	if len(events.created) != 1 || events.created[0] != 2 {
		t.Fatalf("tasks created event = %v, want [2]", events.created)
	}
}

func TestCreateFromDocumentSelectedSubset(t *testing.T) {
	uc, _, tasks, _ := createTasksFixture(t)

	selected := []domain.ExtractedTask{{Number: 2, Title: "Add export feature", Priority: domain.PriorityLow}}
	created, err := uc.CreateFromDocument(context.Background(), "owner", "doc-1", "proj-1", selected)
	if err != nil {
		t.Fatalf("CreateFromDocument() error = %v", err)
	}
	if len(created) != 1 || created[0].Title != "Add export feature" {
		t.Fatalf("created = %v, want the single selected task", created)
	}
	if tasks.count() != 1 {
		t.Fatalf("repo holds %d tasks, want 1", tasks.count())
	}
}

func TestCreateFromDocumentDefaultsMissingPriority(t *testing.T) {
	uc, _, _, _ := createTasksFixture(t)

	selected := []domain.ExtractedTask{{Number: 3, Title: "Untriaged"}}
	created, err := uc.CreateFromDocument(context.Background(), "owner", "doc-1", "proj-1", selected)
	if err != nil {
		t.Fatalf("CreateFromDocument() error = %v", err)
	}
	if created[0].Priority != domain.PriorityMedium {
		t.Fatalf("priority = %s, want medium fallback", created[0].Priority)
	}
}

func TestCreateFromDocumentAccessDenied(t *testing.T) {
	uc, _, tasks, _ := createTasksFixture(t)

	_, err := uc.CreateFromDocument(context.Background(), "intruder", "doc-1", "proj-1", nil)
	if !domain.IsKind(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if tasks.count() != 0 {
		t.Fatalf("denied request must not create tasks, repo holds %d", tasks.count())
	}
}

func TestCreateFromDocumentUnknownProject(t *testing.T) {
	uc, _, _, _ := createTasksFixture(t)

	_, err := uc.CreateFromDocument(context.Background(), "owner", "doc-1", "ghost", nil)
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateFromDocumentMissingIDs(t *testing.T) {
	uc, _, _, _ := createTasksFixture(t)

	_, err := uc.CreateFromDocument(context.Background(), "owner", "", "proj-1", nil)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

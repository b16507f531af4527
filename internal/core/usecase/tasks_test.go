package usecase

import (
	"context"
	"testing"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func taskServiceFixture(t *testing.T) (*TaskService, *fakeTaskRepo) {
	t.Helper()
	tasks := newFakeTaskRepo()
	projects := newFakeProjectRepo()
	err := projects.Create(context.Background(), &domain.Project{ID: "proj-1", Name: "Rollout", OwnerID: "owner"})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return NewTaskService(tasks, projects), tasks
}

func TestTaskCreateDefaults(t *testing.T) {
	svc, _ := taskServiceFixture(t)

	task, err := svc.Create(context.Background(), "owner", domain.TaskDraft{Title: "Write docs", ProjectID: "proj-1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.Status != domain.TaskStatusTodo {
		t.Fatalf("status = %s, want todo", task.Status)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("priority = %s, want medium default", task.Priority)
	}
	if task.Source != domain.TaskSourceManual {
		t.Fatalf("source = %s, want manual", task.Source)
	}
	if task.AssignedBy != "owner" {
		t.Fatalf("assigned_by = %s, want owner", task.AssignedBy)
	}
	if task.SkillsRequired == nil {
		t.Fatal("skills must be an empty slice, not nil")
	}
}

func TestTaskCreateValidation(t *testing.T) {
	svc, _ := taskServiceFixture(t)

	if _, err := svc.Create(context.Background(), "owner", domain.TaskDraft{ProjectID: "proj-1"}); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("missing title: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner", domain.TaskDraft{Title: "x", ProjectID: "ghost"}); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("unknown project: expected ErrNotFound, got %v", err)
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	svc, tasks := taskServiceFixture(t)
	task, err := svc.Create(context.Background(), "owner", domain.TaskDraft{Title: "Write docs", ProjectID: "proj-1"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.UpdateStatus(context.Background(), task.ID, domain.TaskStatusInProgress); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	stored, _ := tasks.GetByID(context.Background(), task.ID)
	if stored.Status != domain.TaskStatusInProgress {
		t.Fatalf("stored status = %s, want in_progress", stored.Status)
	}

	if err := svc.UpdateStatus(context.Background(), task.ID, domain.TaskStatus("paused")); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("invalid status: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.UpdateStatus(context.Background(), "ghost", domain.TaskStatusReview); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("unknown task: expected ErrNotFound, got %v", err)
	}
}

func TestTaskListRequiresProject(t *testing.T) {
	svc, _ := taskServiceFixture(t)
	if _, err := svc.ListByProject(context.Background(), ""); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

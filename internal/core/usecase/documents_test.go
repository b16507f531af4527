package usecase

import (
	"context"
	"testing"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func seedDocument(t *testing.T, repo *fakeDocumentRepo, id, owner string) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Document{
		ID:         id,
		Filename:   "plan.pdf",
		FileType:   domain.FileTypePDF,
		UploadedBy: owner,
		Status:     domain.DocumentStatusProcessed,
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
}

func TestDocumentGetOwnershipEnforced(t *testing.T) {
	repo := newFakeDocumentRepo()
	seedDocument(t, repo, "doc-1", "owner")
	svc := NewDocumentService(repo)

	if _, err := svc.Get(context.Background(), "owner", "doc-1"); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), "intruder", "doc-1"); !domain.IsKind(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "owner", "missing"); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentDeleteOwnershipEnforced(t *testing.T) {
	repo := newFakeDocumentRepo()
	seedDocument(t, repo, "doc-1", "owner")
	svc := NewDocumentService(repo)

	if err := svc.Delete(context.Background(), "intruder", "doc-1"); !domain.IsKind(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("denied delete must not remove the document: %v", err)
	}

	if err := svc.Delete(context.Background(), "owner", "doc-1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "doc-1"); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("document should be gone, got %v", err)
	}
}

func TestDocumentListScopedToUploader(t *testing.T) {
	repo := newFakeDocumentRepo()
	seedDocument(t, repo, "doc-1", "alice")
	seedDocument(t, repo, "doc-2", "bob")
	svc := NewDocumentService(repo)

	docs, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "doc-1" {
		t.Fatalf("List() = %v, want only alice's document", docs)
	}
}

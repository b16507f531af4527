package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func documentRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "filename", "file_size", "file_type", "extracted_text", "requirements",
		"extracted_tasks", "word_count", "character_count", "uploaded_by", "project_id",
		"status", "created_at",
	}).AddRow(
		"d-1", "plan.pdf", int64(1024), "pdf", "extracted text body",
		[]byte(`["User Authentication"]`), []byte(`[{"number":1,"title":"Fix login","description":"","priority":"high","estimatedHours":null,"skillsRequired":[],"source":"numbered_dot"}]`),
		3, 19, "u-1", nil, "processed", time.Now(),
	)
}

func TestDocumentRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDocumentRepository(db)
	mock.ExpectQuery("FROM documents").
		WithArgs("d-1").
		WillReturnRows(documentRow())

	doc, err := repo.GetByID(context.Background(), "d-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if doc.FileType != domain.FileTypePDF {
		t.Fatalf("file type = %s, want pdf", doc.FileType)
	}
	if len(doc.Requirements) != 1 || doc.Requirements[0] != "User Authentication" {
		t.Fatalf("requirements = %v", doc.Requirements)
	}
	if len(doc.ExtractedTasks) != 1 || doc.ExtractedTasks[0].Title != "Fix login" {
		t.Fatalf("extracted tasks = %v", doc.ExtractedTasks)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDocumentRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDocumentRepository(db)
	mock.ExpectQuery("FROM documents").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDocumentRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDocumentRepository(db)
	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 1))

	doc := &domain.Document{
		ID: "d-1", Filename: "plan.pdf", FileSize: 1024, FileType: domain.FileTypePDF,
		ExtractedText: "text", Requirements: []string{}, ExtractedTasks: []domain.ExtractedTask{},
		UploadedBy: "u-1", Status: domain.DocumentStatusProcessed, CreatedAt: time.Now(),
	}
	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDocumentRepositoryDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewDocumentRepository(db)
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

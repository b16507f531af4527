package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *DocumentRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026083101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	role TEXT NOT NULL DEFAULT 'member',
	api_token TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	owner_id TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS documents (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	file_size BIGINT NOT NULL,
	file_type TEXT NOT NULL,
	extracted_text TEXT NOT NULL,
	requirements JSONB NOT NULL DEFAULT '[]'::jsonb,
	extracted_tasks JSONB NOT NULL DEFAULT '[]'::jsonb,
	word_count INTEGER NOT NULL,
	character_count INTEGER NOT NULL,
	uploaded_by TEXT NOT NULL,
	project_id TEXT,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	project_id TEXT NOT NULL,
	assigned_to TEXT,
	assigned_by TEXT,
	status TEXT NOT NULL,
	priority TEXT NOT NULL,
	estimated_hours INTEGER,
	skills_required JSONB NOT NULL DEFAULT '[]'::jsonb,
	source TEXT,
	due_date TIMESTAMPTZ,
	ai_priority_score DOUBLE PRECISION,
	ai_priority_reason TEXT,
	ai_priority_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_uploaded_by ON documents(uploaded_by);
CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	requirementsJSON, err := json.Marshal(doc.Requirements)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}
	tasksJSON, err := json.Marshal(doc.ExtractedTasks)
	if err != nil {
		return fmt.Errorf("marshal extracted tasks: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO documents (
	id, filename, file_size, file_type, extracted_text, requirements, extracted_tasks,
	word_count, character_count, uploaded_by, project_id, status, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
`,
		doc.ID, doc.Filename, doc.FileSize, string(doc.FileType), doc.ExtractedText,
		requirementsJSON, tasksJSON, doc.WordCount, doc.CharacterCount,
		doc.UploadedBy, nullString(doc.ProjectID), string(doc.Status), doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

const documentColumns = `
	id, filename, file_size, file_type, extracted_text, requirements, extracted_tasks,
	word_count, character_count, uploaded_by, project_id, status, created_at
`

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get document",
				fmt.Errorf("document %s", id))
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepository) ListByUploader(ctx context.Context, userID string) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE uploaded_by = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrNotFound, "delete document", fmt.Errorf("document %s", id))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var requirementsRaw, tasksRaw []byte
	var fileType, status string
	var projectID sql.NullString

	err := row.Scan(
		&doc.ID, &doc.Filename, &doc.FileSize, &fileType, &doc.ExtractedText,
		&requirementsRaw, &tasksRaw, &doc.WordCount, &doc.CharacterCount,
		&doc.UploadedBy, &projectID, &status, &doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(requirementsRaw, &doc.Requirements); err != nil {
		return nil, fmt.Errorf("unmarshal requirements: %w", err)
	}
	if err := json.Unmarshal(tasksRaw, &doc.ExtractedTasks); err != nil {
		return nil, fmt.Errorf("unmarshal extracted tasks: %w", err)
	}
	doc.FileType = domain.FileType(fileType)
	doc.Status = domain.DocumentStatus(status)
	doc.ProjectID = projectID.String
	return &doc, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

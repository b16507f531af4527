package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO projects (id, name, description, owner_id, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`,
		project.ID, project.Name, nullString(project.Description), project.OwnerID,
		string(project.Status), project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description, owner_id, status, created_at, updated_at
FROM projects
WHERE id = $1
`, id)

	var project domain.Project
	var description sql.NullString
	var status string

	err := row.Scan(&project.ID, &project.Name, &description, &project.OwnerID,
		&status, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get project", fmt.Errorf("project %s", id))
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	project.Description = description.String
	project.Status = domain.ProjectStatus(status)
	return &project, nil
}

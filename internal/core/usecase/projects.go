package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// ProjectService creates and reads the project records tasks hang off.
type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, userID, name, description string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "create project",
			errors.New("name is required"))
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     userID,
		Status:      domain.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("persist project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

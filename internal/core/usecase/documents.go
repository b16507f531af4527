package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// DocumentService covers reads and deletion of processed documents. Every
// per-document operation is ownership-checked against the uploader.
type DocumentService struct {
	docs ports.DocumentRepository
}

func NewDocumentService(docs ports.DocumentRepository) *DocumentService {
	return &DocumentService{docs: docs}
}

func (s *DocumentService) List(ctx context.Context, userID string) ([]domain.Document, error) {
	docs, err := s.docs.ListByUploader(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (s *DocumentService) Get(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.UploadedBy != userID {
		return nil, domain.WrapError(domain.ErrAccessDenied, "get document",
			errors.New("document belongs to another user"))
	}
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, documentID string) error {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.UploadedBy != userID {
		return domain.WrapError(domain.ErrAccessDenied, "delete document",
			errors.New("document belongs to another user"))
	}
	if err := s.docs.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

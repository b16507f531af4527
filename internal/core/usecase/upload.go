package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
)

// UploadDocumentUseCase runs the whole pipeline synchronously inside the
// upload request: spool, extract, normalize, tag, parse tasks, persist.
type UploadDocumentUseCase struct {
	docs      ports.DocumentRepository
	spool     ports.UploadSpool
	extractor ports.TextExtractor
	tagger    ports.RequirementTagger
	parser    ports.TaskParser
	events    ports.EventPublisher
	logger    *slog.Logger
}

func NewUploadDocumentUseCase(
	docs ports.DocumentRepository,
	spool ports.UploadSpool,
	extractor ports.TextExtractor,
	tagger ports.RequirementTagger,
	parser ports.TaskParser,
	events ports.EventPublisher,
	logger *slog.Logger,
) *UploadDocumentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadDocumentUseCase{
		docs:      docs,
		spool:     spool,
		extractor: extractor,
		tagger:    tagger,
		parser:    parser,
		events:    events,
		logger:    logger,
	}
}

func (uc *UploadDocumentUseCase) Upload(
	ctx context.Context,
	userID, filename string,
	size int64,
	body io.Reader,
) (*domain.Document, error) {
	fileType, err := domain.DetectFileType(filename)
	if err != nil {
		return nil, err
	}

	path, err := uc.spool.Save(ctx, filename, body)
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	// The spooled file must go away on every exit path; a failed removal is
	// logged and never blocks the response.
	defer func() {
		if rmErr := uc.spool.Remove(path); rmErr != nil {
			uc.logger.Warn("upload_spool_cleanup_failed", "path", path, "error", rmErr)
		}
	}()

	text, err := uc.extractor.Extract(ctx, path, fileType)
	if err != nil {
		return nil, err
	}

	requirements := uc.tagger.Tags(text)
	extractedTasks := uc.parser.Parse(text)

	doc := &domain.Document{
		ID:             uuid.NewString(),
		Filename:       filename,
		FileSize:       size,
		FileType:       fileType,
		ExtractedText:  text,
		Requirements:   requirements,
		ExtractedTasks: extractedTasks,
		WordCount:      len(strings.Fields(text)),
		CharacterCount: len(text),
		UploadedBy:     userID,
		Status:         domain.DocumentStatusProcessed,
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.docs.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}

	if uc.events != nil {
		if pubErr := uc.events.PublishDocumentProcessed(ctx, doc.ID); pubErr != nil {
			uc.logger.Warn("document_processed_event_failed", "document_id", doc.ID, "error", pubErr)
		}
	}

	uc.logger.Info("document_processed",
		"document_id", doc.ID,
		"file_type", doc.FileType,
		"requirements", len(requirements),
		"extracted_tasks", len(extractedTasks),
	)
	return doc, nil
}

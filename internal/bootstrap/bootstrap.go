package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iamnithyaramesh/project-manager/internal/config"
	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
	"github.com/iamnithyaramesh/project-manager/internal/core/usecase"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/export"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/extractor"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/llm/genai"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/queue/nats"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/repository/postgres"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/resilience"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/storage/tempspool"
	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/taskparse"
)

type App struct {
	Config config.Config

	Users ports.UserDirectory

	IngestUC    ports.DocumentIngestor
	Documents   ports.DocumentService
	Materialize ports.TaskMaterializer
	Prioritize  ports.TaskPrioritizer
	Tasks       ports.TaskManager
	Projects    ports.ProjectManager
	Export      ports.ProjectTaskExporter

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	docRepo := postgres.NewDocumentRepository(db)
	if err := docRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	taskRepo := postgres.NewTaskRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	userRepo := postgres.NewUserRepository(db)

	spool, err := tempspool.New(cfg.UploadSpoolPath)
	if err != nil {
		return nil, fmt.Errorf("init upload spool: %w", err)
	}

	executor := resilience.NewExecutor(resilience.Config{BreakerEnabled: cfg.BreakerEnabled})

	events, err := nats.NewWithOptions(cfg.NATSURL, nats.Options{ResilienceExecutor: executor})
	if err != nil {
		return nil, fmt.Errorf("init event publisher: %w", err)
	}

	var model ports.PriorityModel
	if cfg.AIAPIKey != "" {
		model = genai.New(genai.Options{
			Provider:          cfg.AIProvider,
			APIKey:            cfg.AIAPIKey,
			Model:             cfg.AIModel,
			BaseURL:           cfg.AIBaseURL,
			Timeout:           time.Duration(cfg.AITimeoutSeconds) * time.Second,
			RequestsPerSecond: cfg.AIRequestsPerSecond,
		}, executor)
	}

	textExtractor := extractor.New()
	tagger := taskparse.NewTagger()
	parser := taskparse.NewParser()
	exporter := export.NewXLSXExporter()

	ingestUC := usecase.NewUploadDocumentUseCase(docRepo, spool, textExtractor, tagger, parser, events, logger)
	documents := usecase.NewDocumentService(docRepo)
	materialize := usecase.NewCreateTasksUseCase(docRepo, taskRepo, projectRepo, events, logger)
	prioritize := usecase.NewPrioritizeUseCase(taskRepo, model, logger)
	tasks := usecase.NewTaskService(taskRepo, projectRepo)
	projects := usecase.NewProjectService(projectRepo)
	exportSvc := usecase.NewExportService(projectRepo, taskRepo, exporter)

	return &App{
		Config: cfg,

		Users: userRepo,

		IngestUC:    ingestUC,
		Documents:   documents,
		Materialize: materialize,
		Prioritize:  prioritize,
		Tasks:       tasks,
		Projects:    projects,
		Export:      exportSvc,

		closeFn: func() {
			events.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}

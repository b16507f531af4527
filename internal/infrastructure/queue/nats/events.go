// Package nats publishes fire-and-forget domain events for downstream
// integrations. Nothing in the request path depends on delivery; callers log
// publish failures and move on.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/iamnithyaramesh/project-manager/internal/infrastructure/resilience"
)

const (
	SubjectDocumentProcessed = "documents.processed"
	SubjectTasksCreated      = "tasks.created"
)

type Publisher struct {
	conn     *nats.Conn
	executor *resilience.Executor
}

type Options struct {
	ConnectTimeout       time.Duration
	ReconnectWait        time.Duration
	MaxReconnects        int
	RetryOnFailedConnect *bool
	ResilienceExecutor   *resilience.Executor
}

func New(url string) (*Publisher, error) {
	return NewWithOptions(url, Options{})
}

func NewWithOptions(url string, options Options) (*Publisher, error) {
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}
	reconnectWait := options.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}
	maxReconnects := options.MaxReconnects
	if maxReconnects <= 0 {
		maxReconnects = 60
	}
	retryOnFailedConnect := true
	if options.RetryOnFailedConnect != nil {
		retryOnFailedConnect = *options.RetryOnFailedConnect
	}

	conn, err := nats.Connect(
		url,
		nats.Name("project-manager"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.RetryOnFailedConnect(retryOnFailedConnect),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("nats_disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats_reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Publisher{conn: conn, executor: options.ResilienceExecutor}, nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type documentProcessedEvent struct {
	DocumentID  string    `json:"document_id"`
	ProcessedAt time.Time `json:"processed_at"`
}

type tasksCreatedEvent struct {
	ProjectID string    `json:"project_id"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *Publisher) PublishDocumentProcessed(ctx context.Context, documentID string) error {
	return p.publish(ctx, SubjectDocumentProcessed, documentProcessedEvent{
		DocumentID:  documentID,
		ProcessedAt: time.Now().UTC(),
	})
}

func (p *Publisher) PublishTasksCreated(ctx context.Context, projectID string, count int) error {
	return p.publish(ctx, SubjectTasksCreated, tasksCreatedEvent{
		ProjectID: projectID,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	})
}

func (p *Publisher) publish(ctx context.Context, subject string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	call := func(_ context.Context) error {
		if err := p.conn.Publish(subject, payload); err != nil {
			return fmt.Errorf("nats publish %s: %w", subject, err)
		}
		return nil
	}
	if p.executor != nil {
		return p.executor.Execute(ctx, "nats.publish", call, classifyNATSError)
	}
	return call(ctx)
}

func classifyNATSError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}
	return resilience.ErrorClassification{RecordFailure: true}
}

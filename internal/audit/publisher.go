package audit

import (
	"context"
	"log/slog"
	"time"

	"amity/internal/platform/metrics"
	"amity/pkg/requestcontext"
)

// Publisher hands events to a buffered inbox consumed by the Worker. Audit
// here is operational, not compliance: Emit is fail-open and never blocks a
// business operation. A full inbox drops the event and counts it.
type Publisher struct {
	inbox   chan Event
	logger  *slog.Logger
	metrics *metrics.Metrics
}

const defaultInboxSize = 256

func NewPublisher(logger *slog.Logger, m *metrics.Metrics) *Publisher {
	return &Publisher{
		inbox:   make(chan Event, defaultInboxSize),
		logger:  logger,
		metrics: m,
	}
}

// Emit enriches the event from request context and queues it.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		if p.metrics != nil {
			p.metrics.AuditEventsDropped.Inc()
		}
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"user_id", event.UserID,
		)
	}
}

// Inbox exposes the receive side for the Worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Worker consumes audit events from the publisher inbox and persists them.
// It keeps background processing testable without wiring queue
// implementations into services.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context ends. Store failures are logged and
// skipped; audit loss must not wedge the worker.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "failed to append audit event",
					"error", err,
					"action", event.Action,
				)
			}
		}
	}
}

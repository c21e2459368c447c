package publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	audit "contium/pkg/platform/audit"
	"contium/pkg/platform/audit/metrics"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store   audit.Store
	events  chan audit.Event
	wg      sync.WaitGroup
	logger  *slog.Logger
	metrics *metrics.Metrics
	async   bool
}

// PublisherOption configures the Publisher.
type PublisherOption func(*Publisher)

// WithAsyncBuffer enables async processing with the specified buffer size.
// Events are queued and persisted in a background goroutine.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan audit.Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets a logger for async error reporting.
func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics attaches publisher metrics.
func WithMetrics(m *metrics.Metrics) PublisherOption {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(store audit.Store, opts ...PublisherOption) *Publisher {
	if store == nil {
		panic("audit store is required")
	}
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

// processEvents runs in a goroutine and persists events from the channel.
func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if p.metrics != nil {
			p.metrics.DecQueueDepth()
		}
		p.persist(context.Background(), event)
	}
}

func (p *Publisher) persist(ctx context.Context, event audit.Event) {
	if err := p.store.Append(ctx, event); err != nil {
		if p.metrics != nil {
			p.metrics.IncPersistFailures()
		}
		if p.logger != nil {
			p.logger.Error("failed to persist audit event",
				"error", err,
				"action", event.Action,
				"actor_id", event.ActorID.String(),
			)
		}
	}
}

// Close shuts down the async publisher and waits for pending events to drain.
func (p *Publisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

func (p *Publisher) Emit(ctx context.Context, base audit.Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	if p.metrics != nil {
		p.metrics.IncEventsEmitted(string(audit.AuditEvent(base.Action).Category()))
	}
	if p.async {
		// Non-blocking send with context cancellation support
		select {
		case p.events <- base:
			if p.metrics != nil {
				p.metrics.IncQueueDepth()
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
			if p.metrics != nil {
				p.metrics.IncEventsDropped()
			}
			if p.logger != nil {
				p.logger.Warn("audit buffer full, event dropped",
					"action", base.Action,
					"actor_id", base.ActorID.String(),
				)
			}
			return dErrors.New(dErrors.CodeInternal, "audit buffer full")
		}
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) ListByActor(ctx context.Context, actorID id.UserID) ([]audit.Event, error) {
	return p.store.ListByActor(ctx, actorID)
}

func (p *Publisher) ListByAction(ctx context.Context, action audit.AuditEvent) ([]audit.Event, error) {
	return p.store.ListByAction(ctx, action)
}

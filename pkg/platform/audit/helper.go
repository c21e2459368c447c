package audit

import (
	"context"
	"log/slog"

	id "contium/pkg/domain"
	"contium/pkg/requestcontext"
)

// Emitter is the interface for audit event emission.
// Satisfied by publisher.Publisher.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Logger provides structured audit logging with optional event emission.
// Use this in services to standardize audit logging patterns.
type Logger struct {
	textLogger *slog.Logger
	emitter    Emitter
}

// NewLogger creates an audit logger.
// textLogger is used for structured logging; emitter is optional for event persistence.
func NewLogger(textLogger *slog.Logger, emitter Emitter) *Logger {
	return &Logger{
		textLogger: textLogger,
		emitter:    emitter,
	}
}

// Log logs an audit event to text and optionally emits to the audit store.
// Automatically enriches with request_id from context.
//
// Usage:
//
//	auditLog.Log(ctx, audit.EventBadgeMinted, "actor_id", actorID.String(), "document_id", docID.String())
func (l *Logger) Log(ctx context.Context, event AuditEvent, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}

	l.logToText(ctx, event, attributes)
	l.emitToAudit(ctx, event, requestID, attributes)
}

func (l *Logger) logToText(ctx context.Context, event AuditEvent, attributes []any) {
	if l.textLogger == nil {
		return
	}
	args := append(attributes, "event", string(event), "category", string(event.Category()), "log_type", "audit")
	l.textLogger.InfoContext(ctx, string(event), args...)
}

func (l *Logger) emitToAudit(ctx context.Context, event AuditEvent, requestID string, attributes []any) {
	if l.emitter == nil {
		return
	}

	err := l.emitter.Emit(ctx, Event{
		Timestamp:  requestcontext.Now(ctx),
		ActorID:    id.UserID(extractString(attributes, "actor_id")),
		DocumentID: id.DocumentID(extractString(attributes, "document_id")),
		Action:     string(event),
		Detail:     extractString(attributes, "detail"),
		RequestID:  requestID,
	})
	if err != nil && l.textLogger != nil {
		l.textLogger.ErrorContext(ctx, "failed to emit audit event",
			"error", err,
			"event", string(event),
		)
	}
}

// extractString finds the string value following key in a slog-style
// key/value list.
func extractString(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == key {
			if v, ok := attributes[i+1].(string); ok {
				return v
			}
		}
	}
	return ""
}

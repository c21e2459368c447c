package audit

import (
	"context"

	id "contium/pkg/domain"
)

// Store persists audit events. Implementations are append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByActor(ctx context.Context, actorID id.UserID) ([]Event, error)
	ListByAction(ctx context.Context, action AuditEvent) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}

package audit

import (
	"time"

	id "contium/pkg/domain"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp  time.Time
	ActorID    id.UserID
	DocumentID id.DocumentID
	Action     string
	Detail     string
	RequestID  string
}

type AuditEvent string

const (
	EventDocumentRegistered AuditEvent = "document_registered"
	EventDocumentAmended    AuditEvent = "document_amended"
	EventStatusChanged      AuditEvent = "status_changed"
	EventBadgeMinted        AuditEvent = "badge_minted"
	EventVerificationRun    AuditEvent = "verification_run"
	EventSessionStarted     AuditEvent = "session_started"
)

// Category groups events by who consumes them.
type Category string

const (
	// CategoryCompliance covers authority decisions and credential issuance.
	CategoryCompliance Category = "compliance"
	// CategoryOperations covers everything else.
	CategoryOperations Category = "operations"
)

// Category returns the event's category. Unknown events fall back to operations.
func (e AuditEvent) Category() Category {
	switch e {
	case EventStatusChanged, EventBadgeMinted, EventVerificationRun:
		return CategoryCompliance
	default:
		return CategoryOperations
	}
}

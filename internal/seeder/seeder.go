// Package seeder loads the demo participants, documents and history into the
// in-memory stores at startup.
package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"contium/internal/document/models"
	"contium/internal/user"
	id "contium/pkg/domain"
	"contium/pkg/platform/audit"
)

// UserStore receives demo participants and their registration credit.
type UserStore interface {
	Add(ctx context.Context, u user.User)
	RecordRegistration(ctx context.Context, userID id.UserID) error
}

// DocumentStore receives demo documents.
type DocumentStore interface {
	Save(ctx context.Context, doc *models.Document) error
}

// AuditStore receives the demo history.
type AuditStore interface {
	Append(ctx context.Context, event audit.Event) error
}

// Seeder populates in-memory stores with demo data
type Seeder struct {
	users     UserStore
	documents DocumentStore
	audit     AuditStore
	logger    *slog.Logger
}

// New creates a new seeder
func New(users UserStore, documents DocumentStore, auditStore AuditStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		users:     users,
		documents: documents,
		audit:     auditStore,
		logger:    logger,
	}
}

// SeedAll populates all stores with demo data
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.Info("seeding demo data...")

	users := user.SeedUsers()
	for _, u := range users {
		s.users.Add(ctx, u)
	}

	docs := DemoDocuments()
	for _, doc := range docs {
		if err := s.documents.Save(ctx, doc); err != nil {
			return fmt.Errorf("failed to seed document %s: %w", doc.ID, err)
		}
		if err := s.users.RecordRegistration(ctx, doc.RegisteredBy.ID); err != nil {
			return fmt.Errorf("failed to credit registrant of %s: %w", doc.ID, err)
		}
	}

	if err := s.seedAuditEvents(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed audit events: %w", err)
	}

	s.logger.Info("demo data seeded successfully",
		"users", len(users),
		"documents", len(docs),
	)
	return nil
}

// seedAuditEvents replays the history implied by the demo documents: every
// version is a registration or amendment, and every decided document was
// verified by the authority first.
func (s *Seeder) seedAuditEvents(ctx context.Context, docs []*models.Document) error {
	authority := user.SeedUsers()[3]
	for _, doc := range docs {
		for _, v := range doc.Versions {
			action := audit.EventDocumentAmended
			if v.Version == 1 {
				action = audit.EventDocumentRegistered
			}
			if err := s.append(ctx, audit.Event{
				Timestamp:  v.Timestamp,
				ActorID:    v.Actor.ID,
				DocumentID: doc.ID,
				Action:     string(action),
				Detail:     v.Changes,
			}); err != nil {
				return err
			}
		}
		if !doc.Status.IsTerminal() {
			continue
		}
		if err := s.append(ctx, audit.Event{
			Timestamp:  doc.UpdatedAt,
			ActorID:    authority.ID,
			DocumentID: doc.ID,
			Action:     string(audit.EventVerificationRun),
			Detail:     "valid",
		}); err != nil {
			return err
		}
		if err := s.append(ctx, audit.Event{
			Timestamp:  doc.UpdatedAt,
			ActorID:    authority.ID,
			DocumentID: doc.ID,
			Action:     string(audit.EventStatusChanged),
			Detail:     string(doc.Status),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) append(ctx context.Context, event audit.Event) error {
	if s.audit == nil {
		return nil
	}
	return s.audit.Append(ctx, event)
}

package service

import (
	"context"
	"errors"
	"strings"

	"contium/internal/document/models"
	"contium/internal/document/store"
	"contium/internal/ledger"
	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
	"contium/pkg/requestcontext"
)

const badgeDescription = "Compliance NFT issued for a successful verification on Contium"

var errBadgeTaken = errors.New("badge already minted")

// UpdateStatus records an authority decision. An unknown id is a no-op.
// Re-deciding a validated or observed document is allowed unless the
// service was built with WithTerminalStatusLock.
func (s *Service) UpdateStatus(ctx context.Context, docID id.DocumentID, status models.Status, actor user.Actor) error {
	if !actor.Role.CanVerify() {
		return dErrors.New(dErrors.CodeForbidden, "only the customs authority may change document status")
	}
	if !status.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown document status: "+string(status))
	}

	now := requestcontext.Now(ctx)
	var previous models.Status
	_, err := s.store.Update(ctx, docID, func(doc *models.Document) error {
		if s.lockTerminal && doc.Status.IsTerminal() {
			return dErrors.New(dErrors.CodeConflict, "document status is final: "+string(doc.Status))
		}
		previous = doc.Status
		doc.Status = status
		doc.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.DebugContext(ctx, "status update for unknown document ignored",
				"document_id", docID.String(),
			)
			return nil
		}
		return wrapStoreErr(err, "failed to update document status")
	}

	if s.metrics != nil {
		s.metrics.IncStatusTransition(string(status))
	}
	s.auditLog.Log(ctx, audit.EventStatusChanged,
		"actor_id", actor.ID.String(),
		"document_id", docID.String(),
		"detail", string(status),
		"previous", string(previous),
	)
	return nil
}

// MintBadge issues the compliance badge for a validated document. It returns
// (nil, nil) when the document does not exist or already carries a badge, so
// repeated calls never produce a second badge.
func (s *Service) MintBadge(ctx context.Context, docID id.DocumentID) (*user.Badge, error) {
	current, err := s.store.FindByID(ctx, docID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to load document")
	}
	if current.HasBadge() {
		return nil, nil
	}
	if current.Status != models.StatusValidated {
		return nil, dErrors.New(dErrors.CodePolicyViolation, "badges are issued only for validated documents")
	}

	tx := s.anchor(ctx, ledger.KindBadge, docID.String())
	badge := user.Badge{
		ID:          id.NewBadgeID(),
		Type:        user.BadgeCompliance,
		Name:        badgeName(current),
		Description: badgeDescription,
		TxHash:      txHash(tx),
		MintedAt:    requestcontext.Now(ctx),
		DocumentID:  docID,
	}

	updated, err := s.store.Update(ctx, docID, func(doc *models.Document) error {
		if doc.HasBadge() {
			return errBadgeTaken
		}
		if doc.Status != models.StatusValidated {
			return dErrors.New(dErrors.CodePolicyViolation, "badges are issued only for validated documents")
		}
		b := badge
		doc.Badge = &b
		return nil
	})
	if err != nil {
		if errors.Is(err, errBadgeTaken) || errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapStoreErr(err, "failed to mint badge")
	}

	if s.directory != nil {
		if err := s.directory.AwardBadge(ctx, updated.RegisteredBy.ID, badge); err != nil {
			s.logger.WarnContext(ctx, "failed to award badge to registrant",
				"error", err,
				"actor_id", updated.RegisteredBy.ID.String(),
			)
		}
	}
	if s.metrics != nil {
		s.metrics.IncBadgeMinted()
	}
	s.auditLog.Log(ctx, audit.EventBadgeMinted,
		"actor_id", updated.RegisteredBy.ID.String(),
		"document_id", docID.String(),
		"detail", badge.ID.String(),
	)
	return &badge, nil
}

// badgeName uses the title segment after the first '#', else the document id.
func badgeName(doc *models.Document) string {
	suffix := doc.ID.String()
	if parts := strings.Split(doc.Title, "#"); len(parts) > 1 && parts[1] != "" {
		suffix = parts[1]
	}
	return "Compliance Badge #" + suffix
}

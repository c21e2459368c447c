package service

import (
	"context"
	"strings"
	"time"

	"contium/internal/document/models"
	"contium/internal/integrity"
	"contium/internal/ledger"
	"contium/internal/risk"
	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
	limits "contium/pkg/platform/validation"
	"contium/pkg/requestcontext"
)

const initialChangeNote = "Document registered"

// Register hashes data, runs price analysis for invoices, and stores the
// document as version 1 in status registered.
func (s *Service) Register(ctx context.Context, docType models.Type, title string, data models.Data, registrant user.Actor) (*models.Document, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRegisterLatency(time.Since(start).Seconds())
		}
	}()

	if registrant.ID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "missing registrant")
	}
	if !docType.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown document type: "+string(docType))
	}
	if !models.CanRegister(registrant.Role, docType) {
		return nil, dErrors.New(dErrors.CodeForbidden, "role "+string(registrant.Role)+" cannot register "+string(docType))
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if err := limits.CheckStringLength("title", title, limits.MaxTitleLength); err != nil {
		return nil, err
	}
	if err := s.validateData(ctx, docType, data); err != nil {
		return nil, err
	}

	hash, err := integrity.ComputeHash(data)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash document data")
	}

	now := requestcontext.Now(ctx)
	docID := id.NewDocumentID()
	tx := s.anchor(ctx, ledger.KindRegistration, docID.String())

	doc := &models.Document{
		ID:            docID,
		Type:          docType,
		Title:         title,
		RegisteredBy:  registrant,
		Status:        models.StatusRegistered,
		RiskIndicator: risk.LevelLow,
		CreatedAt:     now,
		Data:          data,
		Blockchain:    tx,
	}
	doc.AppendVersion(hash, registrant, initialChangeNote, now, txHash(tx))

	if inv, ok := data.(*models.InvoiceData); ok && len(inv.Items) > 0 {
		analysis := risk.Analyze(riskItems(inv.Items), s.prices, now)
		doc.Analysis = &analysis
		doc.RiskIndicator = analysis.RiskLevel
		if s.metrics != nil {
			s.metrics.IncRiskAssessment(string(analysis.RiskLevel))
		}
	}

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, wrapStoreErr(err, "failed to save document")
	}

	if s.directory != nil {
		if err := s.directory.RecordRegistration(ctx, registrant.ID); err != nil {
			s.logger.WarnContext(ctx, "failed to credit registrant",
				"error", err,
				"actor_id", registrant.ID.String(),
			)
		}
	}
	if s.metrics != nil {
		s.metrics.IncRegistered(string(docType))
	}
	s.auditLog.Log(ctx, audit.EventDocumentRegistered,
		"actor_id", registrant.ID.String(),
		"document_id", docID.String(),
		"detail", string(docType),
		"risk", string(doc.RiskIndicator),
	)
	return doc, nil
}

// Amend appends a new version carrying data. Only the registrant may amend,
// and only while the document awaits review. The stored analysis is kept.
func (s *Service) Amend(ctx context.Context, docID id.DocumentID, data models.Data, actor user.Actor, changes string) (*models.Document, error) {
	if actor.ID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "missing actor")
	}
	changes = strings.TrimSpace(changes)
	if changes == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "change description is required")
	}

	current, err := s.store.FindByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	if err := s.validateData(ctx, current.Type, data); err != nil {
		return nil, err
	}
	hash, err := integrity.ComputeHash(data)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash document data")
	}
	if err := checkAmendable(current, actor, hash); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	tx := s.anchor(ctx, ledger.KindAmendment, docID.String())

	// Rechecked under the store lock; a concurrent review may have landed.
	updated, err := s.store.Update(ctx, docID, func(doc *models.Document) error {
		if err := checkAmendable(doc, actor, hash); err != nil {
			return err
		}
		doc.Data = data
		doc.AppendVersion(hash, actor, changes, now, txHash(tx))
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err, "failed to amend document")
	}

	if s.metrics != nil {
		s.metrics.IncAmended()
	}
	s.auditLog.Log(ctx, audit.EventDocumentAmended,
		"actor_id", actor.ID.String(),
		"document_id", docID.String(),
		"version", updated.CurrentVersion,
	)
	return updated, nil
}

func checkAmendable(doc *models.Document, actor user.Actor, hash string) error {
	if doc.RegisteredBy.ID != actor.ID {
		return dErrors.New(dErrors.CodeForbidden, "only the registrant may amend a document")
	}
	if doc.Status != models.StatusRegistered {
		return dErrors.New(dErrors.CodeConflict, "document has already been reviewed")
	}
	if doc.Hash == hash {
		return dErrors.New(dErrors.CodeValidation, "amendment does not change the document")
	}
	return nil
}

func riskItems(items []models.InvoiceItem) []risk.Item {
	out := make([]risk.Item, 0, len(items))
	for _, it := range items {
		out = append(out, risk.Item{Description: it.Description, UnitPrice: it.UnitPrice, HSCode: it.HSCode})
	}
	return out
}

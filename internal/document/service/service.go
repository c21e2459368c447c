package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"contium/internal/document/metrics"
	"contium/internal/document/models"
	"contium/internal/document/store"
	"contium/internal/ledger"
	"contium/internal/risk"
	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,Directory

// Store defines the persistence interface for documents.
// Error Contract:
// - FindByID and Update return store.ErrNotFound when no document exists
// - Save returns store.ErrConflict on duplicate ids
// - List* return an empty slice, never nil, when nothing matches
type Store interface {
	Save(ctx context.Context, doc *models.Document) error
	FindByID(ctx context.Context, docID id.DocumentID) (*models.Document, error)
	Update(ctx context.Context, docID id.DocumentID, fn store.MutateFunc) (*models.Document, error)
	List(ctx context.Context) ([]*models.Document, error)
	ListByType(ctx context.Context, t models.Type) ([]*models.Document, error)
	ListByRegistrant(ctx context.Context, userID id.UserID) ([]*models.Document, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Document, error)
}

// Directory receives score accrual for registrants.
type Directory interface {
	RecordRegistration(ctx context.Context, userID id.UserID) error
	AwardBadge(ctx context.Context, userID id.UserID, badge user.Badge) error
}

type Option func(*Service)

// Service owns the document lifecycle: registration, amendment, status
// decisions, and badge issuance. It is constructed once and shared.
type Service struct {
	store        Store
	directory    Directory
	ledger       ledger.Ledger
	emitter      audit.Emitter
	auditLog     *audit.Logger
	metrics      *metrics.Metrics
	logger       *slog.Logger
	prices       *risk.ReferenceTable
	lockTerminal bool
}

func NewService(store Store, opts ...Option) *Service {
	if store == nil {
		panic("document store is required")
	}
	svc := &Service{
		store:  store,
		prices: risk.DefaultTable(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc.auditLog = audit.NewLogger(svc.logger, svc.emitter)
	return svc
}

// WithLogger sets the logger instance for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics instance for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditor sets where audit events are emitted.
func WithAuditor(emitter audit.Emitter) Option {
	return func(s *Service) {
		s.emitter = emitter
	}
}

// WithDirectory enables score and badge accrual on registrants.
func WithDirectory(d Directory) Option {
	return func(s *Service) {
		s.directory = d
	}
}

// WithLedger attaches the simulated ledger used to decorate records with
// transaction receipts.
func WithLedger(l ledger.Ledger) Option {
	return func(s *Service) {
		s.ledger = l
	}
}

// WithReferenceTable overrides the built-in market price bands.
func WithReferenceTable(t *risk.ReferenceTable) Option {
	return func(s *Service) {
		if t != nil {
			s.prices = t
		}
	}
}

// WithTerminalStatusLock rejects status changes once a document has been
// validated or observed.
func WithTerminalStatusLock(lock bool) Option {
	return func(s *Service) {
		s.lockTerminal = lock
	}
}

// ReferencePrices exposes the table used by invoice analysis.
func (s *Service) ReferencePrices() *risk.ReferenceTable {
	return s.prices
}

// anchor records a ledger transaction. Receipts are decoration, so a ledger
// failure is logged and the operation proceeds without one.
func (s *Service) anchor(ctx context.Context, kind ledger.Kind, ref string) *ledger.Transaction {
	if s.ledger == nil {
		return nil
	}
	tx, err := s.ledger.Record(ctx, kind, ref)
	if err != nil {
		s.logger.WarnContext(ctx, "ledger record failed",
			"error", err,
			"kind", string(kind),
			"reference", ref,
		)
		return nil
	}
	return &tx
}

func txHash(tx *ledger.Transaction) string {
	if tx == nil {
		return ""
	}
	return tx.TxHash
}

// wrapStoreErr passes domain errors through and marks anything else internal.
func wrapStoreErr(err error, msg string) error {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

package verification

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"contium/internal/document/models"
	"contium/internal/ledger"
	"contium/internal/platform/tracer"
	"contium/internal/user"
	"contium/internal/verification/metrics"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
	"contium/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Documents

// Documents is the read side of the document service used by verification.
type Documents interface {
	GetByID(ctx context.Context, docID id.DocumentID) (*models.Document, bool, error)
}

// waitFunc blocks for d or until ctx is done.
type waitFunc func(ctx context.Context, d time.Duration) error

type Option func(*Service)

// Service runs verifications. It reads documents and never mutates them.
type Service struct {
	documents Documents
	ledger    ledger.Ledger
	emitter   audit.Emitter
	auditLog  *audit.Logger
	metrics   *metrics.Metrics
	tracer    tracer.Tracer
	logger    *slog.Logger
	pacing    bool
	wait      waitFunc
}

func NewService(documents Documents, opts ...Option) *Service {
	if documents == nil {
		panic("document reader is required")
	}
	svc := &Service{
		documents: documents,
		tracer:    tracer.NewNoop(),
		wait:      sleepCtx,
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

func WithAuditor(emitter audit.Emitter) Option {
	return func(s *Service) {
		s.emitter = emitter
	}
}

func WithLedger(l ledger.Ledger) Option {
	return func(s *Service) {
		s.ledger = l
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithPacing makes VerifyStaged wait out each step's display duration.
func WithPacing(enabled bool) Option {
	return func(s *Service) {
		s.pacing = enabled
	}
}

// Verify runs the checklist against the stored document. Only the customs
// authority may verify. The run reads the document as-is; stored risk is
// reported, not recomputed.
func (s *Service) Verify(ctx context.Context, docID id.DocumentID, verifier user.Actor) (result *Result, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerificationRun,
		tracer.String(tracer.AttrDocumentID, docID.String()),
		tracer.String(tracer.AttrVerifierID, verifier.ID.String()),
	)
	defer func() {
		span.End(err)
		if s.metrics != nil {
			s.metrics.ObserveVerifyLatency(time.Since(start).Seconds())
		}
	}()

	doc, err := s.load(ctx, docID, verifier)
	if err != nil {
		return nil, err
	}

	res := RunChecks(doc, verifier, requestcontext.Now(ctx))
	res.Blockchain = s.anchor(ctx, docID)
	span.SetAttributes(
		tracer.String(tracer.AttrDocumentType, string(doc.Type)),
		tracer.Bool(tracer.AttrHashMatch, res.HashMatch),
		tracer.Bool(tracer.AttrVersionIntegrity, res.VersionIntegrity),
		tracer.Bool(tracer.AttrValid, res.Valid()),
	)

	failed := res.Failed()
	if s.metrics != nil {
		s.metrics.IncVerification(res.Valid())
		for _, c := range failed {
			s.metrics.IncCheckFailed(string(c))
		}
	}
	if len(failed) > 0 {
		s.logger.WarnContext(ctx, "verification checks failed",
			"document_id", docID.String(),
			"failed_checks", joinChecks(failed),
		)
	}
	s.auditLog.Log(ctx, audit.EventVerificationRun,
		"actor_id", verifier.ID.String(),
		"document_id", docID.String(),
		"detail", verdict(res.Valid()),
	)
	return &res, nil
}

// VerifyStaged reports progress through each display step, then runs
// Verify. Role and document are checked before the first step is reported.
// Cancelling ctx before the last step discards the run: nothing is
// audited, anchored, or counted as a verification.
func (s *Service) VerifyStaged(ctx context.Context, docID id.DocumentID, verifier user.Actor, onStep func(Progress)) (*Result, error) {
	if _, err := s.load(ctx, docID, verifier); err != nil {
		return nil, err
	}
	if onStep == nil {
		onStep = func(Progress) {}
	}

	stageCtx, span := s.tracer.Start(ctx, tracer.SpanVerificationStage,
		tracer.String(tracer.AttrDocumentID, docID.String()),
	)
	onStep(ProgressAt(0))
	for i, step := range Steps {
		if err := s.pause(stageCtx, step.Duration); err != nil {
			span.End(err)
			return nil, s.cancelled(ctx, docID, i, err)
		}
		span.AddEvent(tracer.EventStepCompleted, tracer.Int64(tracer.AttrStep, int64(step.Number)))
		onStep(ProgressAt(i + 1))
	}
	if err := s.pause(stageCtx, FinalPause); err != nil {
		span.End(err)
		return nil, s.cancelled(ctx, docID, len(Steps), err)
	}
	span.End(nil)

	return s.Verify(ctx, docID, verifier)
}

func (s *Service) load(ctx context.Context, docID id.DocumentID, verifier user.Actor) (*models.Document, error) {
	if !verifier.Role.CanVerify() {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the customs authority may verify documents")
	}
	doc, found, err := s.documents.GetByID(ctx, docID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load document")
	}
	if !found {
		return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	return doc, nil
}

func (s *Service) pause(ctx context.Context, d time.Duration) error {
	if !s.pacing {
		return ctx.Err()
	}
	return s.wait(ctx, d)
}

func (s *Service) cancelled(ctx context.Context, docID id.DocumentID, completed int, err error) error {
	if s.metrics != nil {
		s.metrics.IncStagedCancelled()
	}
	s.logger.InfoContext(ctx, "staged verification cancelled",
		"document_id", docID.String(),
		"completed_steps", completed,
		"error", err,
	)
	return err
}

func (s *Service) anchor(ctx context.Context, docID id.DocumentID) *ledger.Transaction {
	if s.ledger == nil {
		return nil
	}
	tx, err := s.ledger.Record(ctx, ledger.KindVerification, docID.String())
	if err != nil {
		s.logger.WarnContext(ctx, "ledger record failed",
			"error", err,
			"document_id", docID.String(),
		)
		return nil
	}
	return &tx
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func verdict(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func joinChecks(ids []CheckID) string {
	parts := make([]string, len(ids))
	for i, c := range ids {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contium/internal/user"
	"contium/internal/verification"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/httputil"
	"contium/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the verification operations exposed over HTTP.
type Service interface {
	Verify(ctx context.Context, docID id.DocumentID, verifier user.Actor) (*verification.Result, error)
	VerifyStaged(ctx context.Context, docID id.DocumentID, verifier user.Actor, onStep func(verification.Progress)) (*verification.Result, error)
}

// Handler serves the verification endpoints.
type Handler struct {
	verifier Service
	logger   *slog.Logger
}

func New(verifier Service, logger *slog.Logger) *Handler {
	return &Handler{verifier: verifier, logger: logger}
}

// Register registers the verification routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/verifications/steps", h.HandleSteps)
	r.Post("/verifications", h.HandleVerify)
	r.Post("/verifications/stream", h.HandleVerifyStream)
}

func (h *Handler) HandleSteps(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, newStepsResponse())
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	verifier, docID, ok := h.prepare(w, r, ctx, requestID)
	if !ok {
		return
	}
	res, err := h.verifier.Verify(ctx, docID, verifier)
	if err != nil {
		h.logger.WarnContext(ctx, "verification failed",
			"request_id", requestID,
			"document_id", docID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newResultResponse(res))
}

// HandleVerifyStream writes one NDJSON event per completed step followed by
// the result. A client disconnect cancels the run. Failures before the first
// step are plain JSON errors with their HTTP status.
func (h *Handler) HandleVerifyStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	verifier, docID, ok := h.prepare(w, r, ctx, requestID)
	if !ok {
		return
	}

	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	started := false
	emit := func(ev StreamEvent) {
		if !started {
			w.Header().Set("Content-Type", "application/x-ndjson")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		if err := enc.Encode(ev); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	res, err := h.verifier.VerifyStaged(ctx, docID, verifier, func(p verification.Progress) {
		emit(StreamEvent{Type: eventProgress, Progress: &p})
	})
	if err != nil {
		h.logger.WarnContext(ctx, "staged verification failed",
			"request_id", requestID,
			"document_id", docID.String(),
			"error", err,
		)
		if !started {
			httputil.WriteError(w, err)
			return
		}
		emit(StreamEvent{Type: eventError, Error: httputil.DomainCodeToHTTPCode(dErrors.CodeOf(err))})
		return
	}
	resp := newResultResponse(res)
	emit(StreamEvent{Type: eventResult, Result: &resp})
}

func (h *Handler) prepare(w http.ResponseWriter, r *http.Request, ctx context.Context, requestID string) (user.Actor, id.DocumentID, bool) {
	verifier, ok := user.ActorFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "a role session is required"))
		return user.Actor{}, "", false
	}
	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return user.Actor{}, "", false
	}
	return verifier, id.DocumentID(req.DocumentID), true
}

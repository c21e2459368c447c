package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contium/internal/document/models"
	"contium/internal/risk"
	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/httputil"
	"contium/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the document operations exposed over HTTP.
type Service interface {
	Register(ctx context.Context, docType models.Type, title string, data models.Data, registrant user.Actor) (*models.Document, error)
	Amend(ctx context.Context, docID id.DocumentID, data models.Data, actor user.Actor, changes string) (*models.Document, error)
	UpdateStatus(ctx context.Context, docID id.DocumentID, status models.Status, actor user.Actor) error
	MintBadge(ctx context.Context, docID id.DocumentID) (*user.Badge, error)
	GetByID(ctx context.Context, docID id.DocumentID) (*models.Document, bool, error)
	List(ctx context.Context) ([]*models.Document, error)
	ListByType(ctx context.Context, t models.Type) ([]*models.Document, error)
	ListByRegistrant(ctx context.Context, userID id.UserID) ([]*models.Document, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Document, error)
	ReferencePrices() *risk.ReferenceTable
}

// Handler serves the document endpoints.
type Handler struct {
	documents Service
	logger    *slog.Logger
}

// New creates a document Handler.
func New(documents Service, logger *slog.Logger) *Handler {
	return &Handler{documents: documents, logger: logger}
}

// Register registers the document routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/reference-prices", h.HandleReferencePrices)
	r.Post("/documents", h.HandleRegister)
	r.Get("/documents", h.HandleList)
	r.Get("/documents/{id}", h.HandleGet)
	r.Post("/documents/{id}/versions", h.HandleAmend)
	r.Put("/documents/{id}/status", h.HandleUpdateStatus)
	r.Post("/documents/{id}/badge", h.HandleMintBadge)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, ok := h.requireActor(w, ctx, requestID)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	docType, data, err := req.ToDomain()
	if err != nil {
		h.logger.WarnContext(ctx, "invalid document payload",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.documents.Register(ctx, docType, req.Title, data, actor)
	if err != nil {
		h.logServiceError(ctx, "failed to register document", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	filter, err := parseListFilter(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	docs, err := filter.query(ctx, h.documents)
	if err != nil {
		h.logServiceError(ctx, "failed to list documents", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, newListResponse(docs))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}
	doc, found, err := h.documents.GetByID(ctx, docID)
	if err != nil {
		h.logServiceError(ctx, "failed to load document", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "document not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) HandleAmend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, ok := h.requireActor(w, ctx, requestID)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AmendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	current, found, err := h.documents.GetByID(ctx, docID)
	if err != nil {
		h.logServiceError(ctx, "failed to load document", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "document not found"))
		return
	}
	data, err := models.DecodeData(current.Type, req.Data)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.documents.Amend(ctx, docID, data, actor, req.Changes)
	if err != nil {
		h.logServiceError(ctx, "failed to amend document", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, doc)
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, ok := h.requireActor(w, ctx, requestID)
	if !ok {
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.documents.UpdateStatus(ctx, docID, status, actor); err != nil {
		h.logServiceError(ctx, "failed to update document status", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	// The service treats unknown ids as a no-op; the HTTP surface reports them.
	doc, found, err := h.documents.GetByID(ctx, docID)
	if err != nil {
		h.logServiceError(ctx, "failed to load document", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	if !found {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "document not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) HandleMintBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	actor, ok := h.requireActor(w, ctx, requestID)
	if !ok {
		return
	}
	if !actor.Role.CanVerify() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "only the customs authority may mint badges"))
		return
	}
	docID, ok := h.documentID(w, r)
	if !ok {
		return
	}

	badge, err := h.documents.MintBadge(ctx, docID)
	if err != nil {
		h.logServiceError(ctx, "failed to mint badge", requestID, err)
		httputil.WriteError(w, err)
		return
	}
	if badge == nil {
		httputil.WriteJSON(w, http.StatusOK, BadgeResponse{Minted: false})
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, BadgeResponse{Minted: true, Badge: badge})
}

func (h *Handler) HandleReferencePrices(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ReferencePricesResponse{
		Bands: h.documents.ReferencePrices().Entries(),
	})
}

func (h *Handler) requireActor(w http.ResponseWriter, ctx context.Context, requestID string) (user.Actor, bool) {
	actor, ok := user.ActorFrom(ctx)
	if !ok {
		h.logger.WarnContext(ctx, "request without session actor",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "a role session is required"))
		return user.Actor{}, false
	}
	return actor, true
}

func (h *Handler) documentID(w http.ResponseWriter, r *http.Request) (id.DocumentID, bool) {
	docID, err := id.ParseDocumentID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return "", false
	}
	return docID, true
}

// logServiceError logs client-caused failures at warn and the rest at error.
func (h *Handler) logServiceError(ctx context.Context, msg, requestID string, err error) {
	level := slog.LevelError
	if dErrors.CodeOf(err) != dErrors.CodeInternal {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestID,
		"error", err,
	)
}

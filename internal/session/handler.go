package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/httputil"
	"contium/pkg/requestcontext"
)

// Starter starts role sessions.
type Starter interface {
	Start(ctx context.Context, role user.Role) (*Session, error)
}

// Participants reads the live participant record for /me.
type Participants interface {
	Get(ctx context.Context, userID id.UserID) (*user.User, error)
}

// StartRequest selects a role.
type StartRequest struct {
	Role string `json:"role"`
}

func (r *StartRequest) Normalize() {
	r.Role = strings.TrimSpace(r.Role)
}

func (r *StartRequest) Validate() error {
	if r.Role == "" {
		return dErrors.New(dErrors.CodeValidation, "role is required")
	}
	return nil
}

type Handler struct {
	sessions     Starter
	participants Participants
	logger       *slog.Logger
}

func NewHandler(sessions Starter, participants Participants, logger *slog.Logger) *Handler {
	return &Handler{sessions: sessions, participants: participants, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/session", h.HandleStart)
	r.Get("/me", h.HandleMe)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[StartRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	role, err := user.ParseRole(req.Role)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	sess, err := h.sessions.Start(ctx, role)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to start session",
			"request_id", requestID,
			"role", string(role),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, sess)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := user.ActorFrom(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "a role session is required"))
		return
	}
	u, err := h.participants.Get(ctx, actor.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load session participant",
			"request_id", requestcontext.RequestID(ctx),
			"actor_id", actor.ID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

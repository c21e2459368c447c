package leaderboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"contium/pkg/platform/httputil"
	"contium/pkg/requestcontext"
)

// Ranker produces the current leaderboard.
type Ranker interface {
	Leaderboard(ctx context.Context) ([]Entry, error)
}

// Response wraps the ranked entries.
type Response struct {
	Entries []Entry `json:"entries"`
}

type Handler struct {
	ranker Ranker
	logger *slog.Logger
}

func NewHandler(ranker Ranker, logger *slog.Logger) *Handler {
	return &Handler{ranker: ranker, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/leaderboard", h.HandleLeaderboard)
}

func (h *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entries, err := h.ranker.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build leaderboard",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, Response{Entries: entries})
}

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	h.Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveness(t *testing.T) {
	w := serve(t, New("dev"), "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Run("all checks up", func(t *testing.T) {
		h := New("dev")
		h.RegisterCheck("documents", func(context.Context) error { return nil })
		w := serve(t, h, "/health/ready")

		require.Equal(t, http.StatusOK, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "up", resp.Checks["documents"])
	})

	t.Run("failing check", func(t *testing.T) {
		h := New("dev")
		h.RegisterCheck("documents", func(context.Context) error { return nil })
		h.RegisterCheck("audit", func(context.Context) error { return errors.New("publisher closed") })
		w := serve(t, h, "/health/ready")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_ready", resp.Status)
		assert.Equal(t, "down: publisher closed", resp.Checks["audit"])
	})

	t.Run("checks receive a deadline", func(t *testing.T) {
		h := New("dev")
		h.RegisterCheck("deadline", func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		})
		assert.Equal(t, http.StatusOK, serve(t, h, "/health/ready").Code)
	})
}

func TestStatus(t *testing.T) {
	h := New("prod")
	h.startTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return h.startTime.Add(90 * time.Second) }

	w := serve(t, h, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "prod", resp.Environment)
	assert.Equal(t, int64(90), resp.UptimeSeconds)
	assert.Equal(t, "2024-03-01T09:01:30Z", resp.Timestamp)
}

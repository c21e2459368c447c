package requesttime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"contium/pkg/requestcontext"
)

func TestMiddleware_SetsTimeInContext(t *testing.T) {
	var captured time.Time
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = requestcontext.Now(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	before := time.Now()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/documents", nil))
	after := time.Now()

	assert.False(t, captured.Before(before))
	assert.False(t, captured.After(after))
}

func TestMiddleware_TimeIsStableWithinRequest(t *testing.T) {
	var first, second time.Time
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(5 * time.Millisecond)
		second = requestcontext.Now(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/documents", nil))

	assert.Equal(t, first, second)
}

func TestNow_FallsBackToWallClock(t *testing.T) {
	before := time.Now()
	got := requestcontext.Now(context.Background())
	assert.False(t, got.Before(before))
}

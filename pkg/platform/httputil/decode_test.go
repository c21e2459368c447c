package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "contium/pkg/domain-errors"
)

type titleRequest struct {
	Title string `json:"title"`
}

func (r *titleRequest) Normalize() { r.Title = strings.TrimSpace(r.Title) }

func (r *titleRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type forbiddenRequest struct{}

func (r *forbiddenRequest) Validate() error {
	return dErrors.New(dErrors.CodeForbidden, "authority only")
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDecodeJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("decodes valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title":"FC-1"}`))
		got, ok := DecodeJSON[titleRequest](httptest.NewRecorder(), req, logger, ctx, "rid")
		require.True(t, ok)
		assert.Equal(t, "FC-1", got.Title)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{oops`))
		_, ok := DecodeJSON[titleRequest](w, req, logger, ctx, "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeErr(t, w).Error)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title":"x","hash":"forged"}`))
		_, ok := DecodeJSON[titleRequest](w, req, logger, ctx, "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title":"  FC-2  "}`))
		got, ok := DecodeAndPrepare[titleRequest](httptest.NewRecorder(), req, logger, ctx, "rid")
		require.True(t, ok)
		assert.Equal(t, "FC-2", got.Title)
	})

	t.Run("plain validation errors become validation_error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title":"   "}`))
		_, ok := DecodeAndPrepare[titleRequest](w, req, logger, ctx, "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeErr(t, w)
		assert.Equal(t, "validation_error", resp.Error)
		assert.Contains(t, resp.Description, "title is required")
	})

	t.Run("domain errors keep their code", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
		_, ok := DecodeAndPrepare[forbiddenRequest](w, req, logger, ctx, "rid")
		assert.False(t, ok)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestWriteError(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeNotFound:        http.StatusNotFound,
		dErrors.CodeValidation:      http.StatusUnprocessableEntity,
		dErrors.CodeConflict:        http.StatusConflict,
		dErrors.CodePolicyViolation: http.StatusPreconditionFailed,
		dErrors.CodeUnauthorized:    http.StatusUnauthorized,
	}
	for code, status := range cases {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(code, "x"))
		assert.Equal(t, status, w.Code, "code %s", code)
	}

	w := httptest.NewRecorder()
	WriteError(w, errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decodeErr(t, w).Error)
}

package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"contium/internal/user"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
	"contium/pkg/platform/audit/publisher"
	"contium/pkg/platform/audit/store/memory"
	"contium/pkg/requestcontext"
)

var issuedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func atTime(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

func TestTokens(t *testing.T) {
	tokens := NewTokens("test-signing-key", time.Hour)
	carlos := user.SeedUsers()[0]

	token, expiresAt, err := tokens.Issue(atTime(issuedAt), &carlos)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	t.Run("round trip", func(t *testing.T) {
		claims, err := tokens.Parse(atTime(issuedAt.Add(time.Minute)), token)
		require.NoError(t, err)
		assert.Equal(t, "user-001", claims.Subject)
		assert.Equal(t, string(user.RoleExporter), claims.Role)
		uid, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, carlos.ID, uid)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := tokens.Parse(atTime(issuedAt.Add(2*time.Hour)), token)
		require.ErrorContains(t, err, "session expired")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := NewTokens("other-key", time.Hour).Parse(atTime(issuedAt), token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("garbage and empty", func(t *testing.T) {
		_, err := tokens.Parse(atTime(issuedAt), "not-a-token")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
		_, err = tokens.Parse(atTime(issuedAt), "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects algorithm confusion", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Role: string(user.RoleAuthority),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-004",
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tokens.Parse(atTime(issuedAt), raw)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects foreign issuer", func(t *testing.T) {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Role: string(user.RoleAuthority),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-004",
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		})
		raw, err := foreign.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		_, err = tokens.Parse(atTime(issuedAt), raw)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

type SessionSuite struct {
	suite.Suite
	directory  *user.Directory
	auditStore *memory.InMemoryStore
	service    *Service
	router     chi.Router
	ctx        context.Context
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.directory = user.NewDirectory(user.SeedUsers()...)
	s.auditStore = memory.NewInMemoryStore()
	s.service = NewService(s.directory, NewTokens("test-signing-key", time.Hour),
		WithAuditor(publisher.NewPublisher(s.auditStore)),
	)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	s.router.Use(Authenticate(s.service, logger))
	NewHandler(s.service, s.directory, logger).Register(s.router)
}

func (s *SessionSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SessionSuite) TestStart_SelectsSeedUserForRole() {
	sess, err := s.service.Start(s.ctx, user.RoleAuthority)
	s.Require().NoError(err)
	s.Equal("user-004", sess.User.ID.String())
	s.NotEmpty(sess.Token)

	events, err := s.auditStore.ListByAction(s.ctx, audit.EventSessionStarted)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(sess.User.ID, events[0].ActorID)
}

func (s *SessionSuite) TestStart_RoleWithoutParticipant() {
	svc := NewService(user.NewDirectory(), NewTokens("k", time.Hour))
	_, err := svc.Start(s.ctx, user.RoleImporter)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *SessionSuite) TestResolve() {
	sess, err := s.service.Start(s.ctx, user.RoleCustomsAgent)
	s.Require().NoError(err)

	s.Run("returns the live participant", func() {
		s.Require().NoError(s.directory.RecordRegistration(s.ctx, sess.User.ID))
		u, err := s.service.Resolve(s.ctx, sess.Token)
		s.Require().NoError(err)
		s.Equal(1, u.TotalDocuments)
	})

	s.Run("role changed since issue", func() {
		changed := sess.User
		changed.Role = user.RoleImporter
		s.directory.Add(s.ctx, changed)
		_, err := s.service.Resolve(s.ctx, sess.Token)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("participant removed", func() {
		svc := NewService(user.NewDirectory(), NewTokens("test-signing-key", time.Hour))
		_, err := svc.Resolve(s.ctx, sess.Token)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *SessionSuite) TestHTTP_StartThenMe() {
	w := s.do(http.MethodPost, "/session", `{"role":"autoridad"}`, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var sess Session
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &sess))
	s.Equal(user.RoleAuthority, sess.User.Role)

	w = s.do(http.MethodGet, "/me", "", sess.Token)
	s.Require().Equal(http.StatusOK, w.Code)
	var me user.User
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	s.Equal("Ana Torres", me.Name)
}

func (s *SessionSuite) TestHTTP_Rejections() {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		status int
	}{
		{"missing role", http.MethodPost, "/session", `{"role":"  "}`, "", http.StatusUnprocessableEntity},
		{"unknown role", http.MethodPost, "/session", `{"role":"pirate"}`, "", http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/session", `{`, "", http.StatusBadRequest},
		{"me without session", http.MethodGet, "/me", "", "", http.StatusUnauthorized},
		{"me with bad token", http.MethodGet, "/me", "", "nope", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(tc.method, tc.path, tc.body, tc.token)
			s.Equal(tc.status, w.Code, w.Body.String())
		})
	}
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	svc := NewService(user.NewDirectory(user.SeedUsers()...), NewTokens("k", time.Hour))
	reached := false
	h := Authenticate(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

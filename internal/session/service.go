package session

import (
	"context"
	"io"
	"log/slog"
	"time"

	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
)

// Users looks up demo participants.
type Users interface {
	ByRole(ctx context.Context, role user.Role) (*user.User, error)
	Get(ctx context.Context, userID id.UserID) (*user.User, error)
}

// Session is a started role session.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      user.User `json:"user"`
}

type Option func(*Service)

type Service struct {
	users    Users
	tokens   *Tokens
	emitter  audit.Emitter
	auditLog *audit.Logger
	logger   *slog.Logger
}

func NewService(users Users, tokens *Tokens, opts ...Option) *Service {
	if users == nil || tokens == nil {
		panic("session service requires users and tokens")
	}
	svc := &Service{users: users, tokens: tokens}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	svc.auditLog = audit.NewLogger(svc.logger, svc.emitter)
	return svc
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditor(emitter audit.Emitter) Option {
	return func(s *Service) {
		s.emitter = emitter
	}
}

// Start signs in as the participant holding role.
func (s *Service) Start(ctx context.Context, role user.Role) (*Session, error) {
	u, err := s.users.ByRole(ctx, role)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no participant holds role "+string(role))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up participant")
	}
	token, expiresAt, err := s.tokens.Issue(ctx, u)
	if err != nil {
		return nil, err
	}
	s.auditLog.Log(ctx, audit.EventSessionStarted,
		"actor_id", u.ID.String(),
		"detail", string(u.Role),
	)
	return &Session{Token: token, ExpiresAt: expiresAt, User: *u}, nil
}

// Resolve returns the current state of the participant a token belongs to.
// A token whose role no longer matches the participant is rejected.
func (s *Service) Resolve(ctx context.Context, token string) (*user.User, error) {
	claims, err := s.tokens.Parse(ctx, token)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid session subject")
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "session participant no longer exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up participant")
	}
	if string(u.Role) != claims.Role {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session role mismatch")
	}
	return u, nil
}

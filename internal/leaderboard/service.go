package leaderboard

import (
	"context"

	"contium/internal/user"
	id "contium/pkg/domain"
	dErrors "contium/pkg/domain-errors"
	"contium/pkg/platform/audit"
)

// Users lists the participants to rank.
type Users interface {
	List(ctx context.Context) []user.User
}

// Events exposes the audit trail the verification counts are derived from.
type Events interface {
	ListByAction(ctx context.Context, action audit.AuditEvent) ([]audit.Event, error)
}

// Service recomputes the leaderboard on every call. Nothing is cached.
type Service struct {
	users  Users
	events Events
}

func NewService(users Users, events Events) *Service {
	if users == nil || events == nil {
		panic("leaderboard requires users and events")
	}
	return &Service{users: users, events: events}
}

// Leaderboard ranks every known user by verifications performed.
func (s *Service) Leaderboard(ctx context.Context) ([]Entry, error) {
	runs, err := s.events.ListByAction(ctx, audit.EventVerificationRun)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read verification history")
	}
	users := s.users.List(ctx)

	stats := make(map[id.UserID]Stats, len(users))
	for _, u := range users {
		stats[u.ID] = Stats{DocumentsRegistered: u.TotalDocuments, Badges: len(u.Badges)}
	}
	for _, e := range runs {
		st, ok := stats[e.ActorID]
		if !ok {
			continue
		}
		st.Verifications++
		stats[e.ActorID] = st
	}
	return Rank(users, stats), nil
}

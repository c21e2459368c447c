package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "contium/pkg/domain-errors"
	"contium/pkg/testutil"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"exporter":       RoleExporter,
		" Authority ":    RoleAuthority,
		"exportador":     RoleExporter,
		"importador":     RoleImporter,
		"agente_aduanas": RoleCustomsAgent,
		"autoridad":      RoleAuthority,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRole("pirate")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestRoleCanVerify(t *testing.T) {
	for _, r := range Roles {
		assert.Equal(t, r == RoleAuthority, r.CanVerify(), r)
	}
}

type DirectorySuite struct {
	suite.Suite
	dir *Directory
	ctx context.Context
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.dir = NewDirectory(SeedUsers()...)
	s.ctx = context.Background()
}

func (s *DirectorySuite) TestLookup() {
	s.Run("by id", func() {
		u, err := s.dir.Get(s.ctx, "user-002")
		s.Require().NoError(err)
		s.Equal("María García", u.Name)
	})

	s.Run("by role", func() {
		u, err := s.dir.ByRole(s.ctx, RoleCustomsAgent)
		s.Require().NoError(err)
		s.Equal("user-003", u.ID.String())
	})

	s.Run("missing", func() {
		_, err := s.dir.Get(s.ctx, "user-999")
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("list keeps seed order", func() {
		users := s.dir.List(s.ctx)
		s.Require().Len(users, 4)
		s.Equal(RoleExporter, users[0].Role)
		s.Equal(RoleAuthority, users[3].Role)
	})
}

func (s *DirectorySuite) TestAccrual() {
	s.Require().NoError(s.dir.RecordRegistration(s.ctx, "user-001"))
	s.Require().NoError(s.dir.AwardBadge(s.ctx, "user-001", Badge{ID: "nft-1", Type: BadgeCompliance}))

	u, err := s.dir.Get(s.ctx, "user-001")
	s.Require().NoError(err)
	s.Equal(RegistrationPoints+BadgePoints, u.Score)
	s.Equal(1, u.TotalDocuments)
	s.Len(u.Badges, 1)

	s.ErrorIs(s.dir.RecordRegistration(s.ctx, "ghost"), ErrNotFound)
	s.ErrorIs(s.dir.AwardBadge(s.ctx, "ghost", Badge{}), ErrNotFound)
}

// Justification: returned users must be copies so handlers cannot mutate
// directory state by editing a response value.
func (s *DirectorySuite) TestReadsAreCopies() {
	s.Require().NoError(s.dir.AwardBadge(s.ctx, "user-001", Badge{ID: "nft-1"}))
	u, err := s.dir.Get(s.ctx, "user-001")
	s.Require().NoError(err)
	u.Score = 9999
	u.Badges[0].Name = "tampered"

	again, err := s.dir.Get(s.ctx, "user-001")
	s.Require().NoError(err)
	s.Equal(BadgePoints, again.Score)
	s.Empty(again.Badges[0].Name)
}

func (s *DirectorySuite) TestConcurrentAccrual() {
	result := testutil.RunConcurrent(50, func(int) error {
		return s.dir.RecordRegistration(s.ctx, "user-001")
	})
	s.Equal(int32(50), result.Successes)

	u, err := s.dir.Get(s.ctx, "user-001")
	s.Require().NoError(err)
	s.Equal(50, u.TotalDocuments)
	s.Equal(50*RegistrationPoints, u.Score)
}

//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"amity/internal/identity/models"
	"amity/internal/identity/store"
	id "amity/pkg/domain"
	"amity/pkg/platform/sentinel"
	"amity/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.Pool)
	s.Require().NoError(s.store.Schema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "users"))
}

func newPGUser(username, email string) *models.User {
	return &models.User{
		ID:        id.NewUserID(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	requester := id.NewUserID()
	user := newPGUser("jane", "jane@example.com")
	user.PasswordDigest = "$2a$10$digest"
	user.Friends = []id.UserID{requester}
	user.FriendRequests = []models.FriendRequest{{
		RequesterID: requester,
		Status:      models.StatusAccepted,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}}

	s.Require().NoError(s.store.Save(ctx, user))

	found, err := s.store.FindByID(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Username, found.Username)
	s.Equal(user.PasswordDigest, found.PasswordDigest)
	s.Equal(user.Friends, found.Friends)
	s.Require().Len(found.FriendRequests, 1)
	s.Equal(models.StatusAccepted, found.FriendRequests[0].Status)
	s.Equal(requester, found.FriendRequests[0].RequesterID)
}

func (s *PostgresStoreSuite) TestEmailConstraint() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, newPGUser("one", "dup@example.com")))
	err := s.store.Save(ctx, newPGUser("two", "dup@example.com"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	_, err = s.store.FindByEmail(ctx, "DUP@example.com")
	s.Require().NoError(err)

	_, err = s.store.FindByEmail(ctx, "missing@example.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSavePairAtomicity() {
	ctx := context.Background()

	a := newPGUser("a", "a@example.com")
	b := newPGUser("b", "b@example.com")
	s.Require().NoError(s.store.Save(ctx, a))
	s.Require().NoError(s.store.Save(ctx, b))

	a.AddFriend(b.ID)
	b.AddFriend(a.ID)
	s.Require().NoError(s.store.SavePair(ctx, a, b))

	gotA, err := s.store.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	gotB, err := s.store.FindByID(ctx, b.ID)
	s.Require().NoError(err)
	s.True(gotA.IsFriend(b.ID))
	s.True(gotB.IsFriend(a.ID))
}

func (s *PostgresStoreSuite) TestEnumerationAndSearch() {
	ctx := context.Background()

	users := []*models.User{
		newPGUser("alice", "alice@example.com"),
		newPGUser("bob", "bob@example.com"),
		newPGUser("bobby", "bobby@example.com"),
	}
	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, u := range users {
		u.CreatedAt = base.Add(time.Duration(i) * time.Second)
		s.Require().NoError(s.store.Save(ctx, u))
	}

	listed, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal(users[0].ID, listed[0].ID)
	s.Equal(users[2].ID, listed[2].ID)

	matches, err := s.store.SearchByUsername(ctx, "BOB")
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *PostgresStoreSuite) TestSearchTreatsPatternAsLiteral() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, newPGUser("100%cotton", "cotton@example.com")))
	s.Require().NoError(s.store.Save(ctx, newPGUser("100copper", "copper@example.com")))
	s.Require().NoError(s.store.Save(ctx, newPGUser("snake_case", "snake@example.com")))

	matches, err := s.store.SearchByUsername(ctx, "100%")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("100%cotton", matches[0].Username)

	matches, err = s.store.SearchByUsername(ctx, "_")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("snake_case", matches[0].Username)
}

// Package service implements registration, login, and logout. Password
// digests are bcrypt; access tokens are signed JWTs; logout revokes the
// presented token's jti for the remainder of its lifetime.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"amity/internal/audit"
	"amity/internal/auth/device"
	"amity/internal/identity/models"
	"amity/internal/identity/store"
	"amity/internal/platform/metrics"
	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
	"amity/pkg/platform/sentinel"
	"amity/pkg/requestcontext"
)

// TokenIssuer signs access tokens. Satisfied by jwttoken.Service.
type TokenIssuer interface {
	GenerateAccessToken(userID id.UserID, email string) (string, error)
	TTL() time.Duration
}

// TokenRevoker marks a token's jti revoked. Satisfied by the revocation
// stores.
type TokenRevoker interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Auditor receives audit events, fire-and-forget.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event)
}

type Service struct {
	users   store.UserStore
	tokens  TokenIssuer
	trl     TokenRevoker
	auditor Auditor
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(
	users store.UserStore,
	tokens TokenIssuer,
	trl TokenRevoker,
	auditor Auditor,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		trl:     trl,
		auditor: auditor,
		logger:  logger,
		metrics: m,
	}
}

// Register creates a user with a bcrypt password digest. Email uniqueness is
// enforced both here and by the store's conflict sentinel, so a racing
// duplicate still surfaces as a conflict.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (models.PublicProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return models.PublicProfile{}, dErrors.New(dErrors.CodeConflict, "email already registered")
	case errors.Is(err, sentinel.ErrNotFound):
	default:
		return models.PublicProfile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up email")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.PublicProfile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}

	user := &models.User{
		ID:             id.NewUserID(),
		Username:       username,
		Email:          email,
		PasswordDigest: string(digest),
		CreatedAt:      requestcontext.Now(ctx),
	}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return models.PublicProfile{}, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return models.PublicProfile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}

	s.metrics.UsersRegistered.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID: user.ID.String(),
		Action: audit.ActionUserRegistered,
		Device: device.ParseUserAgent(requestcontext.UserAgent(ctx)),
	})
	return user.Public(), nil
}

// Authenticate verifies credentials and issues an access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (models.PublicProfile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.PublicProfile{}, "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return models.PublicProfile{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(rawPassword)); err != nil {
		s.logger.WarnContext(ctx, "failed login attempt",
			"user_id", user.ID,
			"request_id", requestcontext.RequestID(ctx),
		)
		return models.PublicProfile{}, "", dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return models.PublicProfile{}, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}

	s.metrics.Logins.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID: user.ID.String(),
		Action: audit.ActionUserLogin,
		Device: device.ParseUserAgent(requestcontext.UserAgent(ctx)),
	})
	return user.Public(), token, nil
}

// Logout revokes the presented token. The revocation entry lives as long as
// the token could; after that the TRL forgets it.
func (s *Service) Logout(ctx context.Context, userID id.UserID, jti string) error {
	if jti == "" {
		return dErrors.New(dErrors.CodeBadRequest, "no token to revoke")
	}
	if err := s.trl.RevokeToken(ctx, jti, s.tokens.TTL()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}

	s.auditor.Emit(ctx, audit.Event{
		UserID: userID.String(),
		Action: audit.ActionUserLogout,
	})
	return nil
}

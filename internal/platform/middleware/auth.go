package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
	"amity/pkg/platform/httputil"
	"amity/pkg/requestcontext"
)

// JWTValidator validates access tokens presented by clients.
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims carries the subset of token claims the middleware needs.
type JWTClaims struct {
	UserID id.UserID
	Email  string
	JTI    string
}

// TokenRevocationChecker reports whether a token has been revoked by logout.
type TokenRevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RequireAuth enforces bearer authentication. A missing or malformed
// Authorization header is forbidden (403); a header that is present but fails
// validation or has been revoked is unauthorized (401).
func RequireAuth(validator JWTValidator, revocations TokenRevocationChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "no token provided"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token"))
				return
			}

			if revocations != nil && claims.JTI != "" {
				revoked, err := revocations.IsRevoked(ctx, claims.JTI)
				if err != nil {
					logger.ErrorContext(ctx, "revocation check failed",
						"error", err,
						"request_id", requestcontext.RequestID(ctx),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "revocation check failed"))
					return
				}
				if revoked {
					httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "token revoked"))
					return
				}
			}

			ctx = requestcontext.WithUserID(ctx, claims.UserID)
			ctx = requestcontext.WithTokenID(ctx, claims.JTI)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

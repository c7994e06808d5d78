package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"amity/internal/jwttoken"
	"amity/internal/platform/metrics"
	"amity/internal/platform/middleware"
	"amity/pkg/platform/httputil"
)

// RouterConfig collects everything the router needs wired.
type RouterConfig struct {
	Auth        AuthService
	Friends     FriendService
	Tokens      *jwttoken.Service
	Revocations middleware.TokenRevocationChecker
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Health      func(r *http.Request) error
}

// NewRouter assembles the full HTTP surface. Registration, login, and the
// user listing are public; everything else requires a bearer token.
func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.Auth)
	friendHandler := NewFriendHandler(cfg.Friends)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Latency(cfg.Metrics))

	r.Get("/healthz", healthHandler(cfg.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/allUsers", friendHandler.AllUsers)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(&jwtValidator{tokens: cfg.Tokens}, cfg.Revocations, cfg.Logger))
			r.Post("/logout", authHandler.Logout)
			r.Get("/search", friendHandler.Search)
			r.Get("/friendRequests", friendHandler.ListRequests)
			r.Post("/friend/request", friendHandler.SendRequest)
			r.Post("/friend/accept", friendHandler.AcceptRequest)
			r.Post("/friend/reject", friendHandler.RejectRequest)
			r.Post("/recommend", friendHandler.Recommend)
			r.Post("/unfriend", friendHandler.Unfriend)
		})
	})

	return r
}

func healthHandler(check func(r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// jwtValidator adapts the token service to the middleware contract,
// converting the string subject claim into a typed user ID.
type jwtValidator struct {
	tokens *jwttoken.Service
}

func (v *jwtValidator) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := v.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	userID, err := claims.Subject()
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		UserID: userID,
		Email:  claims.Email,
		JTI:    claims.ID,
	}, nil
}

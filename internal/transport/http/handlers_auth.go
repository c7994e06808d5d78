// Package httptransport adapts the chi router onto the auth and friendship services.
// Handlers decode, validate, delegate, and serialize; every business rule
// lives below this layer.
package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/asaskevich/govalidator"

	"amity/internal/identity/models"
	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
	"amity/pkg/platform/httputil"
	"amity/pkg/requestcontext"
)

// AuthService is the credential surface the handlers depend on.
type AuthService interface {
	Register(ctx context.Context, username, email, rawPassword string) (models.PublicProfile, error)
	Authenticate(ctx context.Context, email, rawPassword string) (models.PublicProfile, string, error)
	Logout(ctx context.Context, userID id.UserID, jti string) error
}

//go:generate mockgen -source=handlers_auth.go -destination=mocks/auth-mocks.go -package=mocks AuthService
type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

const minPasswordLength = 8

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Username == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "username is required"))
		return
	}
	if !govalidator.IsEmail(req.Email) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "a valid email is required"))
		return
	}
	if len(req.Password) < minPasswordLength {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "password must be at least 8 characters"))
		return
	}

	profile, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toUserResponse(profile))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "email and password are required"))
		return
	}

	profile, token, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  toUserResponse(profile),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.auth.Logout(ctx, requestcontext.UserID(ctx), requestcontext.TokenID(ctx)); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}

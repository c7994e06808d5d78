package httptransport

import (
	"context"
	"encoding/json"
	"net/http"

	"amity/internal/friendship"
	"amity/internal/identity/models"
	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
	"amity/pkg/platform/httputil"
	"amity/pkg/requestcontext"
)

// FriendService is the relationship surface the handlers depend on.
type FriendService interface {
	SendFriendRequest(ctx context.Context, callerID, targetID id.UserID) error
	AcceptFriendRequest(ctx context.Context, callerID, requesterID id.UserID) error
	RejectFriendRequest(ctx context.Context, callerID, requesterID id.UserID) error
	Unfriend(ctx context.Context, callerID, targetID id.UserID) error
	ListFriendRequests(ctx context.Context, callerID id.UserID) (*friendship.RequestPartitions, error)
	RecommendFriends(ctx context.Context, callerID id.UserID) ([]models.PublicProfile, error)
	SearchUsers(ctx context.Context, pattern string) ([]models.PublicProfile, error)
	ListAllUsers(ctx context.Context) ([]models.PublicProfile, error)
}

//go:generate mockgen -source=handlers_friends.go -destination=mocks/friend-mocks.go -package=mocks FriendService
type FriendHandler struct {
	friends FriendService
}

func NewFriendHandler(friends FriendService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

// decodeFriendID extracts and parses the friendId body field shared by all
// friend mutation endpoints.
func decodeFriendID(r *http.Request) (id.UserID, error) {
	var req friendActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return id.UserID{}, dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return id.ParseUserID(req.FriendID)
}

func (h *FriendHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	friendID, err := decodeFriendID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.friends.SendFriendRequest(r.Context(), requestcontext.UserID(r.Context()), friendID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Friend request sent"})
}

func (h *FriendHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	friendID, err := decodeFriendID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.friends.AcceptFriendRequest(r.Context(), requestcontext.UserID(r.Context()), friendID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Friend request accepted"})
}

func (h *FriendHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	friendID, err := decodeFriendID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.friends.RejectFriendRequest(r.Context(), requestcontext.UserID(r.Context()), friendID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Friend request rejected"})
}

func (h *FriendHandler) Unfriend(w http.ResponseWriter, r *http.Request) {
	friendID, err := decodeFriendID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.friends.Unfriend(r.Context(), requestcontext.UserID(r.Context()), friendID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, messageResponse{Message: "Unfriended"})
}

func (h *FriendHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	parts, err := h.friends.ListFriendRequests(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, friendRequestsResponse{
		Pending:  toRequestViews(parts.Pending),
		Accepted: toRequestViews(parts.Accepted),
		Rejected: toRequestViews(parts.Rejected),
	})
}

func (h *FriendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	recs, err := h.friends.RecommendFriends(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponses(recs))
}

func (h *FriendHandler) Search(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("username")
	if pattern == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "username query parameter is required"))
		return
	}
	found, err := h.friends.SearchUsers(r.Context(), pattern)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponses(found))
}

func (h *FriendHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	all, err := h.friends.ListAllUsers(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponses(all))
}

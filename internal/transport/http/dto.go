package httptransport

import (
	"time"

	"amity/internal/friendship"
	"amity/internal/identity/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// friendActionRequest is the shared body of every friend mutation endpoint.
type friendActionRequest struct {
	FriendID string `json:"friendId"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type requestView struct {
	Requester userResponse `json:"requester"`
	Status    string       `json:"status"`
}

type friendRequestsResponse struct {
	Pending  []requestView `json:"pending"`
	Accepted []requestView `json:"accepted"`
	Rejected []requestView `json:"rejected"`
}

func toUserResponse(p models.PublicProfile) userResponse {
	return userResponse{
		ID:        p.ID.String(),
		Username:  p.Username,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}

func toUserResponses(profiles []models.PublicProfile) []userResponse {
	out := make([]userResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, toUserResponse(p))
	}
	return out
}

func toRequestViews(views []friendship.RequestView) []requestView {
	out := make([]requestView, 0, len(views))
	for _, v := range views {
		out = append(out, requestView{
			Requester: toUserResponse(v.Requester),
			Status:    string(v.Status),
		})
	}
	return out
}

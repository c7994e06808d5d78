package audit

import (
	"time"
)

// Action names the audited operation.
type Action string

const (
	ActionUserRegistered        Action = "user_registered"
	ActionUserLogin             Action = "user_login"
	ActionUserLogout            Action = "user_logout"
	ActionFriendRequestSent     Action = "friend_request_sent"
	ActionFriendRequestAccepted Action = "friend_request_accepted"
	ActionFriendRequestRejected Action = "friend_request_rejected"
	ActionUnfriended            Action = "unfriended"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out. UserID is the acting
// user; Subject, when set, is the other party of a relationship change.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject,omitempty"`
	Action    Action    `json:"action"`
	RequestID string    `json:"request_id,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	Device    string    `json:"device,omitempty"`
}

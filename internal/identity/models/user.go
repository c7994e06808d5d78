package models

import (
	"time"

	id "amity/pkg/domain"
)

// RequestStatus is the lifecycle state of a friend request. A request is
// created pending and resolved exactly once; resolved records are retained
// for history and never deleted.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// IsValid checks the status against the supported enum values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Resolved reports whether the request reached a terminal state.
func (s RequestStatus) Resolved() bool {
	return s == StatusAccepted || s == StatusRejected
}

// FriendRequest is a request addressed to the user whose record holds it.
type FriendRequest struct {
	RequesterID id.UserID
	Status      RequestStatus
	CreatedAt   time.Time
}

// User is the persisted identity record. Friends membership is symmetric:
// if A is in B's Friends, B must be in A's Friends. FriendRequests preserves
// insertion order and accumulates history across friend/unfriend cycles.
type User struct {
	ID             id.UserID
	Username       string
	Email          string
	PasswordDigest string
	Friends        []id.UserID
	FriendRequests []FriendRequest
	CreatedAt      time.Time
}

// IsFriend reports whether other is in the user's friend set.
func (u *User) IsFriend(other id.UserID) bool {
	for _, f := range u.Friends {
		if f == other {
			return true
		}
	}
	return false
}

// AddFriend appends other to the friend set. The add is idempotent: a
// second add of the same ID is a no-op and returns false.
func (u *User) AddFriend(other id.UserID) bool {
	if u.IsFriend(other) {
		return false
	}
	u.Friends = append(u.Friends, other)
	return true
}

// RemoveFriend deletes other from the friend set, preserving order of the
// remaining entries. Returns false if other was not a friend.
func (u *User) RemoveFriend(other id.UserID) bool {
	for i, f := range u.Friends {
		if f == other {
			u.Friends = append(u.Friends[:i], u.Friends[i+1:]...)
			return true
		}
	}
	return false
}

// RequestFrom returns the stored request from the given requester, or nil.
// At most one request per requester exists per record.
func (u *User) RequestFrom(requester id.UserID) *FriendRequest {
	for i := range u.FriendRequests {
		if u.FriendRequests[i].RequesterID == requester {
			return &u.FriendRequests[i]
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing store
// state.
func (u *User) Clone() *User {
	cp := *u
	cp.Friends = append([]id.UserID(nil), u.Friends...)
	cp.FriendRequests = append([]FriendRequest(nil), u.FriendRequests...)
	return &cp
}

// PublicProfile is the outward projection of a user. It has no digest field
// at all, so leaking credentials through serialization is structurally
// impossible.
type PublicProfile struct {
	ID        id.UserID
	Username  string
	Email     string
	CreatedAt time.Time
}

// Public projects the user onto its public view.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

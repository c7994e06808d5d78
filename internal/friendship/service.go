// Package friendship owns the friend-request state machine and the
// mutual-friend recommendation algorithm. The service holds no state between
// calls: every operation loads records from the injected store, mutates them
// in memory, and writes back within the same call.
package friendship

import (
	"context"
	"errors"
	"log/slog"

	"amity/internal/audit"
	"amity/internal/identity/models"
	"amity/internal/identity/store"
	"amity/internal/platform/metrics"
	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
	"amity/pkg/platform/sentinel"
	"amity/pkg/requestcontext"
)

// Auditor receives audit events. Emission is fire-and-forget; see audit.Publisher.
type Auditor interface {
	Emit(ctx context.Context, event audit.Event)
}

type Service struct {
	users   store.UserStore
	auditor Auditor
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(users store.UserStore, auditor Auditor, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		users:   users,
		auditor: auditor,
		logger:  logger,
		metrics: m,
	}
}

// RequestView is a friend request enriched with the requester's public
// identity. The join never exposes the requester's password digest.
type RequestView struct {
	Requester models.PublicProfile
	Status    models.RequestStatus
}

// RequestPartitions groups a user's request history by status, preserving
// the original insertion order within each partition.
type RequestPartitions struct {
	Pending  []RequestView
	Accepted []RequestView
	Rejected []RequestView
}

// SendFriendRequest records a pending request on the target's record. A
// request from the same caller already on record, in any status, blocks a
// new one: resolved requests are history, and history includes rejections.
func (s *Service) SendFriendRequest(ctx context.Context, callerID, targetID id.UserID) error {
	if callerID == targetID {
		return dErrors.New(dErrors.CodeBadRequest, "cannot send a friend request to yourself")
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	if target.RequestFrom(callerID) != nil {
		return dErrors.New(dErrors.CodeConflict, "friend request already sent")
	}

	target.FriendRequests = append(target.FriendRequests, models.FriendRequest{
		RequesterID: callerID,
		Status:      models.StatusPending,
		CreatedAt:   requestcontext.Now(ctx),
	})

	if err := s.users.Save(ctx, target); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}

	s.metrics.FriendRequestsSent.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID:  callerID.String(),
		Subject: targetID.String(),
		Action:  audit.ActionFriendRequestSent,
	})
	return nil
}

// AcceptFriendRequest resolves a pending request on the caller's record and
// establishes the symmetric friendship. Both records persist through one
// atomic SavePair, so a crash cannot leave a one-sided friendship.
func (s *Service) AcceptFriendRequest(ctx context.Context, callerID, requesterID id.UserID) error {
	caller, requester, req, err := s.loadTransition(ctx, callerID, requesterID)
	if err != nil {
		return err
	}

	req.Status = models.StatusAccepted
	caller.AddFriend(requesterID)
	requester.AddFriend(callerID)

	if err := s.users.SavePair(ctx, caller, requester); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save users")
	}

	s.metrics.FriendRequestsAccepted.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID:  callerID.String(),
		Subject: requesterID.String(),
		Action:  audit.ActionFriendRequestAccepted,
	})
	return nil
}

// RejectFriendRequest resolves a pending request to rejected. Only the
// caller's record changes; the requester is loaded to validate the
// transition but not persisted.
func (s *Service) RejectFriendRequest(ctx context.Context, callerID, requesterID id.UserID) error {
	caller, _, req, err := s.loadTransition(ctx, callerID, requesterID)
	if err != nil {
		return err
	}

	req.Status = models.StatusRejected

	if err := s.users.Save(ctx, caller); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
	}

	s.metrics.FriendRequestsRejected.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID:  callerID.String(),
		Subject: requesterID.String(),
		Action:  audit.ActionFriendRequestRejected,
	})
	return nil
}

// loadTransition loads both parties of an accept/reject and locates the
// request. Requests transition exactly once: resolving an already-resolved
// request is a conflict.
func (s *Service) loadTransition(ctx context.Context, callerID, requesterID id.UserID) (*models.User, *models.User, *models.FriendRequest, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	req := caller.RequestFrom(requesterID)
	if req == nil {
		return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "friend request not found")
	}
	if req.Status.Resolved() {
		return nil, nil, nil, dErrors.New(dErrors.CodeConflict, "friend request already resolved")
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	return caller, requester, req, nil
}

// Unfriend removes the friendship from both sides. Request history is never
// touched, so friend/unfriend cycles keep their full record trail. If the
// target record has vanished the caller-side removal still stands.
func (s *Service) Unfriend(ctx context.Context, callerID, targetID id.UserID) error {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	if !caller.RemoveFriend(targetID) {
		return dErrors.New(dErrors.CodeBadRequest, "user is not your friend")
	}

	target, err := s.users.FindByID(ctx, targetID)
	switch {
	case err == nil:
		target.RemoveFriend(callerID)
		if err := s.users.SavePair(ctx, caller, target); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save users")
		}
	case errors.Is(err, sentinel.ErrNotFound):
		if err := s.users.Save(ctx, caller); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save user")
		}
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	s.metrics.Unfriends.Inc()
	s.auditor.Emit(ctx, audit.Event{
		UserID:  callerID.String(),
		Subject: targetID.String(),
		Action:  audit.ActionUnfriended,
	})
	return nil
}

// ListFriendRequests partitions the caller's request history by status,
// preserving insertion order within each partition. Requesters whose records
// have since been deleted are skipped rather than failing the whole listing.
func (s *Service) ListFriendRequests(ctx context.Context, callerID id.UserID) (*RequestPartitions, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	out := &RequestPartitions{
		Pending:  []RequestView{},
		Accepted: []RequestView{},
		Rejected: []RequestView{},
	}
	for _, req := range caller.FriendRequests {
		requester, err := s.users.FindByID(ctx, req.RequesterID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				s.logger.WarnContext(ctx, "friend request references missing user",
					"requester_id", req.RequesterID,
					"user_id", callerID,
				)
				continue
			}
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
		}

		view := RequestView{Requester: requester.Public(), Status: req.Status}
		switch req.Status {
		case models.StatusPending:
			out.Pending = append(out.Pending, view)
		case models.StatusAccepted:
			out.Accepted = append(out.Accepted, view)
		case models.StatusRejected:
			out.Rejected = append(out.Rejected, view)
		default:
			s.logger.WarnContext(ctx, "friend request has unknown status",
				"status", string(req.Status),
				"user_id", callerID,
			)
		}
	}
	return out, nil
}

// RecommendFriends returns every user sharing at least one friend with the
// caller, excluding the caller and existing friends. Output follows the
// store's enumeration order; no ranking by mutual count is applied.
//
// The scan is O(U*F) over all users. Fine at this scale; an inverted
// friend-adjacency index is the upgrade path if U grows.
func (s *Service) RecommendFriends(ctx context.Context, callerID id.UserID) ([]models.PublicProfile, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}

	friends := make(map[id.UserID]struct{}, len(caller.Friends))
	for _, f := range caller.Friends {
		friends[f] = struct{}{}
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}

	recommendations := []models.PublicProfile{}
	for _, candidate := range all {
		if candidate.ID == callerID {
			continue
		}
		if _, isFriend := friends[candidate.ID]; isFriend {
			continue
		}
		mutual := 0
		for _, cf := range candidate.Friends {
			if _, ok := friends[cf]; ok {
				mutual++
			}
		}
		if mutual > 0 {
			recommendations = append(recommendations, candidate.Public())
		}
	}

	s.metrics.RecommendationSize.Observe(float64(len(recommendations)))
	s.logger.DebugContext(ctx, "computed friend recommendations",
		"user_id", callerID,
		"count", len(recommendations),
	)
	return recommendations, nil
}

// SearchUsers matches the pattern as a case-insensitive substring of the
// username. Results are public projections only.
func (s *Service) SearchUsers(ctx context.Context, pattern string) ([]models.PublicProfile, error) {
	matches, err := s.users.SearchByUsername(ctx, pattern)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search users")
	}
	return publicProfiles(matches), nil
}

// ListAllUsers returns every user as a public projection.
func (s *Service) ListAllUsers(ctx context.Context) ([]models.PublicProfile, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}
	return publicProfiles(all), nil
}

func publicProfiles(users []*models.User) []models.PublicProfile {
	out := make([]models.PublicProfile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}

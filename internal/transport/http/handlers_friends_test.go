package httptransport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"amity/internal/friendship"
	"amity/internal/identity/models"
	"amity/internal/jwttoken"
	"amity/internal/transport/http/mocks"
	id "amity/pkg/domain"
	dErrors "amity/pkg/domain-errors"
)

func newAuthedRequest(t *testing.T, method, path, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// doList executes a request whose response body is a JSON array of objects.
func doList(t *testing.T, router http.Handler, req *http.Request) []map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

type FriendHandlerSuite struct {
	suite.Suite
	callerID id.UserID
	token    string
}

func TestFriendHandlerSuite(t *testing.T) {
	suite.Run(t, new(FriendHandlerSuite))
}

func (s *FriendHandlerSuite) SetupSuite() {
	s.callerID = id.NewUserID()
	tokens := jwttoken.New("handler-test-key", "amity", 24*time.Hour)
	token, err := tokens.GenerateAccessToken(s.callerID, "caller@example.com")
	s.Require().NoError(err)
	s.token = token
}

func (s *FriendHandlerSuite) newRouter(t *testing.T) (*mocks.MockFriendService, http.Handler) {
	t.Helper()
	_, friendSvc, router := newTestRouter(t)
	return friendSvc, router
}

func (s *FriendHandlerSuite) TestMutationEndpoints() {
	friendID := id.NewUserID()
	body := fmt.Sprintf(`{"friendId":%q}`, friendID)

	cases := []struct {
		name    string
		path    string
		expect  func(svc *mocks.MockFriendService) *gomock.Call
		message string
	}{
		{
			name: "send request",
			path: "/auth/friend/request",
			expect: func(svc *mocks.MockFriendService) *gomock.Call {
				return svc.EXPECT().SendFriendRequest(gomock.Any(), s.callerID, friendID)
			},
			message: "Friend request sent",
		},
		{
			name: "accept request",
			path: "/auth/friend/accept",
			expect: func(svc *mocks.MockFriendService) *gomock.Call {
				return svc.EXPECT().AcceptFriendRequest(gomock.Any(), s.callerID, friendID)
			},
			message: "Friend request accepted",
		},
		{
			name: "reject request",
			path: "/auth/friend/reject",
			expect: func(svc *mocks.MockFriendService) *gomock.Call {
				return svc.EXPECT().RejectFriendRequest(gomock.Any(), s.callerID, friendID)
			},
			message: "Friend request rejected",
		},
		{
			name: "unfriend",
			path: "/auth/unfriend",
			expect: func(svc *mocks.MockFriendService) *gomock.Call {
				return svc.EXPECT().Unfriend(gomock.Any(), s.callerID, friendID)
			},
			message: "Unfriended",
		},
	}

	for _, tc := range cases {
		s.T().Run(tc.name+" - 200", func(t *testing.T) {
			friendSvc, router := s.newRouter(t)
			tc.expect(friendSvc).Return(nil)

			status, got := doJSON(t, router, http.MethodPost, tc.path, body, s.token)

			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tc.message, got["message"])
		})

		s.T().Run(tc.name+" - domain error mapped", func(t *testing.T) {
			friendSvc, router := s.newRouter(t)
			tc.expect(friendSvc).Return(dErrors.New(dErrors.CodeNotFound, "user not found"))

			status, got := doJSON(t, router, http.MethodPost, tc.path, body, s.token)

			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "user not found", got["error_description"])
		})

		s.T().Run(tc.name+" - malformed friendId rejected", func(t *testing.T) {
			friendSvc, router := s.newRouter(t)
			tc.expect(friendSvc).Times(0)

			status, got := doJSON(t, router, http.MethodPost, tc.path, `{"friendId":"not-a-uuid"}`, s.token)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, string(dErrors.CodeInvalidInput), got["error"])
		})

		s.T().Run(tc.name+" - missing token forbidden", func(t *testing.T) {
			friendSvc, router := s.newRouter(t)
			tc.expect(friendSvc).Times(0)

			status, _ := doJSON(t, router, http.MethodPost, tc.path, body, "")

			assert.Equal(t, http.StatusForbidden, status)
		})
	}
}

func (s *FriendHandlerSuite) TestListRequests() {
	requester := models.PublicProfile{ID: id.NewUserID(), Username: "req", Email: "req@example.com"}

	s.T().Run("partitions serialized - 200", func(t *testing.T) {
		friendSvc, router := s.newRouter(t)
		friendSvc.EXPECT().
			ListFriendRequests(gomock.Any(), s.callerID).
			Return(&friendship.RequestPartitions{
				Pending:  []friendship.RequestView{{Requester: requester, Status: models.StatusPending}},
				Accepted: []friendship.RequestView{},
				Rejected: []friendship.RequestView{},
			}, nil)

		status, got := doJSON(t, router, http.MethodGet, "/auth/friendRequests", "", s.token)

		assert.Equal(t, http.StatusOK, status)
		pending, ok := got["pending"].([]any)
		require.True(t, ok)
		require.Len(t, pending, 1)
		entry := pending[0].(map[string]any)
		assert.Equal(t, "pending", entry["status"])
		assert.Equal(t, "req", entry["requester"].(map[string]any)["username"])

		accepted, ok := got["accepted"].([]any)
		require.True(t, ok)
		assert.Empty(t, accepted)
	})
}

func (s *FriendHandlerSuite) TestRecommend() {
	s.T().Run("recommendations serialized - 200", func(t *testing.T) {
		friendSvc, router := s.newRouter(t)
		recs := []models.PublicProfile{
			{ID: id.NewUserID(), Username: "first"},
			{ID: id.NewUserID(), Username: "second"},
		}
		friendSvc.EXPECT().RecommendFriends(gomock.Any(), s.callerID).Return(recs, nil)

		req := newAuthedRequest(t, http.MethodPost, "/auth/recommend", s.token)
		body := doList(t, router, req)

		require.Len(t, body, 2)
		assert.Equal(t, "first", body[0]["username"])
		assert.Equal(t, "second", body[1]["username"])
	})
}

func (s *FriendHandlerSuite) TestSearch() {
	s.T().Run("query forwarded - 200", func(t *testing.T) {
		friendSvc, router := s.newRouter(t)
		friendSvc.EXPECT().
			SearchUsers(gomock.Any(), "ali").
			Return([]models.PublicProfile{{ID: id.NewUserID(), Username: "alice"}}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/auth/search?username=ali", s.token)
		body := doList(t, router, req)

		require.Len(t, body, 1)
		assert.Equal(t, "alice", body[0]["username"])
	})

	s.T().Run("missing query - 400", func(t *testing.T) {
		friendSvc, router := s.newRouter(t)
		friendSvc.EXPECT().SearchUsers(gomock.Any(), gomock.Any()).Times(0)

		status, _ := doJSON(t, router, http.MethodGet, "/auth/search", "", s.token)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func (s *FriendHandlerSuite) TestAllUsers() {
	s.T().Run("public and digest-free - 200", func(t *testing.T) {
		friendSvc, router := s.newRouter(t)
		friendSvc.EXPECT().
			ListAllUsers(gomock.Any()).
			Return([]models.PublicProfile{{ID: id.NewUserID(), Username: "alice", Email: "alice@example.com"}}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/auth/allUsers", "")
		body := doList(t, router, req)

		require.Len(t, body, 1)
		assert.Equal(t, "alice", body[0]["username"])
		_, hasDigest := body[0]["password"]
		assert.False(t, hasDigest)
		_, hasDigest = body[0]["password_digest"]
		assert.False(t, hasDigest)
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered        prometheus.Counter
	Logins                 prometheus.Counter
	FriendRequestsSent     prometheus.Counter
	FriendRequestsAccepted prometheus.Counter
	FriendRequestsRejected prometheus.Counter
	Unfriends              prometheus.Counter
	RecommendationSize     prometheus.Histogram
	RequestDuration        *prometheus.HistogramVec
	AuditEventsDropped     prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry so parallel suites do not collide on registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_users_registered_total",
			Help: "Total number of users registered",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_logins_total",
			Help: "Total number of successful logins",
		}),
		FriendRequestsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_friend_requests_sent_total",
			Help: "Total number of friend requests sent",
		}),
		FriendRequestsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_friend_requests_accepted_total",
			Help: "Total number of friend requests accepted",
		}),
		FriendRequestsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_friend_requests_rejected_total",
			Help: "Total number of friend requests rejected",
		}),
		Unfriends: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_unfriends_total",
			Help: "Total number of unfriend operations",
		}),
		RecommendationSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "amity_recommendation_size",
			Help:    "Number of candidates returned per recommendation call",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "amity_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		AuditEventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "amity_audit_events_dropped_total",
			Help: "Audit events dropped because the inbox was full",
		}),
	}
}

// Package revocation tracks revoked token IDs (jti) until their natural
// expiry. The middleware consults it on every authenticated request.
package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryTRL is an in-process token revocation list. Suitable for a single
// instance; distributed deployments use RedisTRL.
type MemoryTRL struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryTRL constructs an empty in-memory revocation list.
func NewMemoryTRL() *MemoryTRL {
	return &MemoryTRL{revoked: make(map[string]time.Time)}
}

// RevokeToken marks a jti revoked for the given TTL.
func (t *MemoryTRL) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.revoked[jti] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether a jti is currently revoked. Expired entries are
// pruned lazily on lookup.
func (t *MemoryTRL) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	expiry, ok := t.revoked[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(t.revoked, jti)
		return false, nil
	}
	return true, nil
}

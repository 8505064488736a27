package auth

import (
	"sync"
	"time"
)

// RevocationList tracks tokens that must no longer be honored even though
// they have not yet expired. It is constructed once at process start and
// injected into the service; entries live until process restart or until
// SweepExpired removes those past their natural expiry.
type RevocationList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time)}
}

// Revoke marks the exact token string as unusable. The token's expiry is
// recorded so the entry can be swept once it would have lapsed anyway.
// Revoking an already-revoked token is a no-op.
func (l *RevocationList) Revoke(token string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.revoked[token]; ok {
		return
	}
	l.revoked[token] = expiresAt
}

// IsRevoked reports whether token has been revoked. A caller sequenced after
// a completed Revoke of the same token always observes true.
func (l *RevocationList) IsRevoked(token string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.revoked[token]
	return ok
}

// SweepExpired removes entries whose recorded expiry lies before now and
// returns how many were removed. It only bounds memory; correctness of
// IsRevoked never depends on it, since an expired token fails signature
// validation anyway.
func (l *RevocationList) SweepExpired(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for token, expiresAt := range l.revoked {
		if expiresAt.Before(now) {
			delete(l.revoked, token)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked entries.
func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.revoked)
}

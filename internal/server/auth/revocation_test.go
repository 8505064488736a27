package auth

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationList_RevokeAndLookup(t *testing.T) {
	t.Parallel()

	l := NewRevocationList()
	exp := time.Now().Add(time.Hour)

	assert.False(t, l.IsRevoked("tok-1"))

	l.Revoke("tok-1", exp)
	assert.True(t, l.IsRevoked("tok-1"))
	assert.False(t, l.IsRevoked("tok-2"))

	// second revoke of the same token is a no-op
	l.Revoke("tok-1", exp)
	assert.True(t, l.IsRevoked("tok-1"))
	assert.Equal(t, 1, l.Len())
}

func TestRevocationList_SweepExpired(t *testing.T) {
	t.Parallel()

	l := NewRevocationList()
	now := time.Now()

	l.Revoke("expired", now.Add(-time.Minute))
	l.Revoke("live", now.Add(time.Hour))

	removed := l.SweepExpired(now)
	assert.Equal(t, 1, removed)

	// the entry still within its validity window must survive
	assert.True(t, l.IsRevoked("live"))
	assert.False(t, l.IsRevoked("expired"))
	assert.Equal(t, 1, l.Len())
}

func TestRevocationList_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	l := NewRevocationList()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("tok-%d", i)
		go func() {
			defer wg.Done()
			l.Revoke(token, exp)
		}()
		go func() {
			defer wg.Done()
			_ = l.IsRevoked(token)
			_ = l.SweepExpired(time.Now())
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.True(t, l.IsRevoked(fmt.Sprintf("tok-%d", i)))
	}
}

package naming

import (
	"sync"
)

// CollisionTracker records which source file first claimed each output stem
// in a run. All methods are goroutine-safe.
type CollisionTracker struct {
	mu     sync.Mutex
	owners map[string]string // stem → source path that owns it
}

// NewCollisionTracker creates a ready-to-use tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{owners: make(map[string]string)}
}

// Claim registers source as the owner of its stem. When another source
// already owns the stem, that owner is returned with collided=true and the
// claim is left unchanged. Re-claiming with the same source is not a
// collision.
func (ct *CollisionTracker) Claim(source string) (owner string, collided bool) {
	stem := Stem(source)

	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[stem]
	if !exists || owner == source {
		ct.owners[stem] = source
		return source, false
	}
	return owner, true
}

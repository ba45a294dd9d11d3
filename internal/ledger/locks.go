package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// ownerLocks serializes engine operations per owner. The wallet balance is
// shared across all goals of one user, so two mutating operations for the
// same owner must never interleave their read-modify-write. Operations for
// different owners run in parallel.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock acquires the lock for the given owner and returns the function
// releasing it.
//
// Locks are never removed from the map. The number of owners on one
// instance is small and a mutex is cheap.
func (o *ownerLocks) lock(ownerID uuid.UUID) func() {
	o.mu.Lock()
	l, ok := o.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[ownerID] = l
	}
	o.mu.Unlock()

	l.Lock()
	return l.Unlock
}

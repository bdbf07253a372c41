package system

import (
	"errors"
	"sync"

	"liftsim/src/types"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInternal      = errors.New("internal error")
	ErrStoreClosed   = errors.New("state store closed")
)

// storeCmd is executed by the store goroutine with exclusive access to the
// current snapshot.
type storeCmd struct {
	exec func(current *types.Snapshot)
}

// Store owns the current snapshot and serializes every access to it.
type Store struct {
	cmds      chan storeCmd
	done      chan struct{}
	closeOnce sync.Once
}

// UpdateFunc computes the next snapshot from a private copy of the current one.
// Returning an error leaves the current snapshot in place.
type UpdateFunc func(current types.Snapshot) (types.Snapshot, error)

package system

import (
	"fmt"
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
)

// NewStore starts the goroutine that owns the snapshot.
func NewStore(initial types.Snapshot) *Store {
	store := &Store{
		cmds: make(chan storeCmd),
		done: make(chan struct{}),
	}
	go func() {
		snapshot := clone(initial)
		for {
			select {
			case cmd := <-store.cmds:
				cmd.exec(&snapshot)
			case <-store.done:
				return
			}
		}
	}()
	return store
}

// Get returns a deep copy of the current snapshot, or ErrStoreClosed.
func (store *Store) Get() (types.Snapshot, error) {
	var reply types.Snapshot
	if !store.execute(func(current *types.Snapshot) { reply = clone(*current) }) {
		return types.Snapshot{}, ErrStoreClosed
	}
	return reply, nil
}

// Replace swaps in a copy of snapshot.
func (store *Store) Replace(snapshot types.Snapshot) error {
	next := clone(snapshot)
	if !store.execute(func(current *types.Snapshot) { *current = next }) {
		return ErrStoreClosed
	}
	return nil
}

// Update reads, computes and replaces the snapshot as one step, so no other
// command can run in between. A panic in update is recovered and reported as
// ErrInternal; the previous snapshot stays current.
func (store *Store) Update(update UpdateFunc) (types.Snapshot, error) {
	var (
		reply types.Snapshot
		err   error
	)
	ok := store.execute(func(current *types.Snapshot) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Snapshot update panicked", "panic", r)
				err = fmt.Errorf("%w: %v", ErrInternal, r)
			}
		}()

		next, updateErr := update(clone(*current))
		if updateErr != nil {
			err = updateErr
			return
		}
		*current = next
		reply = clone(next)
	})
	if !ok {
		return types.Snapshot{}, ErrStoreClosed
	}
	return reply, err
}

// Initialize discards all state and builds a fresh bank of idle elevators at
// floor 0.
func (store *Store) Initialize(elevatorCount, floorCount, capacity int) (types.Snapshot, error) {
	snapshot := newSnapshot(elevatorCount, floorCount, capacity)
	if err := store.Replace(snapshot); err != nil {
		return types.Snapshot{}, err
	}
	slog.Info("Elevator system initialized",
		"elevators", elevatorCount,
		"floors", floorCount,
		"capacity", capacity)
	return snapshot, nil
}

// Close stops the store goroutine. Later calls fail with ErrStoreClosed.
func (store *Store) Close() {
	store.closeOnce.Do(func() { close(store.done) })
}

// execute runs exec on the store goroutine and waits for it to finish.
func (store *Store) execute(exec func(current *types.Snapshot)) bool {
	finished := make(chan struct{})
	cmd := storeCmd{
		exec: func(current *types.Snapshot) {
			defer close(finished)
			exec(current)
		},
	}
	select {
	case store.cmds <- cmd:
		<-finished
		return true
	case <-store.done:
		return false
	}
}

func newSnapshot(elevatorCount, floorCount, capacity int) types.Snapshot {
	elevators := make([]types.Elevator, elevatorCount)
	for i := range elevators {
		elevators[i] = types.Elevator{
			ID:           i,
			CurrentFloor: 0,
			Status:       types.Idle,
			TargetFloors: []int{},
			Requests:     []types.RideRequest{},
			Capacity:     capacity,
		}
	}
	return types.Snapshot{
		Elevators:  elevators,
		FloorCount: floorCount,
	}
}

func clone(snapshot types.Snapshot) types.Snapshot {
	var copied types.Snapshot
	if err := deepcopy.Copy(&copied, &snapshot); err != nil {
		panic(err)
	}
	return copied
}

// Package system is the entry point to the simulation core: it owns the state
// store and exposes the request, tick and query operations used by the
// executor, the network server and the console.
package system

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"liftsim/src/dispatcher"
	"liftsim/src/elev"
	"liftsim/src/types"
)

// System is one independent simulation. It is safe for concurrent use; all
// mutations are serialized by its store.
type System struct {
	store *Store
	newID func() string
	intN  func(n int) int
}

// New creates a system with elevatorCount idle elevators on a building with
// floorCount floors.
func New(elevatorCount, floorCount, capacity int) (*System, error) {
	sys := &System{
		store: NewStore(types.Snapshot{}),
		newID: uuid.NewString,
		intN:  rand.IntN,
	}
	if _, err := sys.Initialize(elevatorCount, floorCount, capacity); err != nil {
		sys.Close()
		return nil, err
	}
	return sys, nil
}

// Initialize rebuilds the elevator bank from scratch, discarding all requests.
func (sys *System) Initialize(elevatorCount, floorCount, capacity int) (types.Snapshot, error) {
	if elevatorCount <= 0 || floorCount <= 0 || capacity <= 0 {
		return types.Snapshot{}, fmt.Errorf("%w: elevators=%d floors=%d capacity=%d must all be positive",
			ErrInvalidConfig, elevatorCount, floorCount, capacity)
	}
	return sys.store.Initialize(elevatorCount, floorCount, capacity)
}

// SubmitRequest validates a ride from fromFloor to toFloor and hands it to the
// best scoring elevator. Rejected requests leave the state untouched.
func (sys *System) SubmitRequest(fromFloor, toFloor int) types.RequestResult {
	var (
		request    types.RideRequest
		elevatorID int
	)
	_, err := sys.store.Update(func(snapshot types.Snapshot) (types.Snapshot, error) {
		if err := dispatcher.Validate(snapshot, fromFloor, toFloor); err != nil {
			return snapshot, err
		}
		if len(snapshot.Elevators) == 0 {
			return snapshot, fmt.Errorf("%w: no elevators", ErrInvalidConfig)
		}

		request = dispatcher.NewRequest(sys.newID(), fromFloor, toFloor)
		index := dispatcher.SelectBestElevator(snapshot, fromFloor, request.Direction)
		next := dispatcher.Assign(snapshot, index, request)
		elevatorID = next.Elevators[index].ID
		return next, nil
	})
	if err != nil {
		slog.Warn("Request rejected", "from", fromFloor, "to", toFloor, "reason", err)
		return types.RequestResult{Success: false, Message: err.Error()}
	}

	slog.Info("Request assigned",
		"id", request.ID,
		"from", fromFloor,
		"to", toFloor,
		"elevator", elevatorID)
	return types.RequestResult{
		Success:    true,
		ElevatorID: &elevatorID,
		Request:    &request,
	}
}

// SubmitRandomRequest submits a ride between two distinct random floors.
func (sys *System) SubmitRandomRequest() types.RequestResult {
	fromFloor, toFloor, err := RandomRequest(sys.Snapshot().FloorCount, sys.intN)
	if err != nil {
		return types.RequestResult{Success: false, Message: err.Error()}
	}
	slog.Info("New random request", "from", fromFloor, "to", toFloor)
	return sys.SubmitRequest(fromFloor, toFloor)
}

// AdvanceTick moves every elevator by one step and returns the new snapshot.
// A closed system has no elevators left to move and returns the zero Snapshot.
func (sys *System) AdvanceTick() types.Snapshot {
	next, err := sys.store.Update(func(snapshot types.Snapshot) (types.Snapshot, error) {
		return elev.StepAll(snapshot), nil
	})
	if errors.Is(err, ErrStoreClosed) {
		slog.Warn("Tick on closed system ignored")
		return types.Snapshot{}
	}
	if err != nil {
		slog.Error("Tick failed, keeping previous state", "err", err)
		return sys.Snapshot()
	}
	return next
}

// Snapshot returns a copy of the current state, or the zero Snapshot once the
// system is closed.
func (sys *System) Snapshot() types.Snapshot {
	snapshot, err := sys.store.Get()
	if err != nil {
		slog.Warn("Snapshot of closed system requested")
	}
	return snapshot
}

// Elevator looks up a single elevator by id.
func (sys *System) Elevator(id int) (types.Elevator, bool) {
	snapshot, err := sys.store.Get()
	if err != nil {
		return types.Elevator{}, false
	}
	for _, elevator := range snapshot.Elevators {
		if elevator.ID == id {
			return elevator, true
		}
	}
	return types.Elevator{}, false
}

func (sys *System) Close() {
	sys.store.Close()
}

// RandomRequest draws two distinct floors in [0, floorCount) using intN.
func RandomRequest(floorCount int, intN func(n int) int) (fromFloor, toFloor int, err error) {
	if floorCount < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 floors for a random request, have %d", ErrInvalidConfig, floorCount)
	}
	fromFloor = intN(floorCount)
	toFloor = intN(floorCount - 1)
	if toFloor >= fromFloor {
		toFloor++
	}
	return fromFloor, toFloor, nil
}

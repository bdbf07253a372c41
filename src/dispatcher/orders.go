package dispatcher

import (
	"fmt"
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// Validate checks a request against the floor range of the snapshot.
func Validate(snapshot types.Snapshot, fromFloor, toFloor int) error {
	last := snapshot.FloorCount - 1
	if fromFloor < 0 || fromFloor > last {
		return fmt.Errorf("%w: request floor must be between 0 and %d", ErrInvalidFloor, last)
	}
	if toFloor < 0 || toFloor > last {
		return fmt.Errorf("%w: destination floor must be between 0 and %d", ErrInvalidFloor, last)
	}
	if fromFloor == toFloor {
		return fmt.Errorf("%w: request floor and destination floor cannot be the same", ErrSameOriginDestination)
	}
	return nil
}

func NewRequest(id string, fromFloor, toFloor int) types.RideRequest {
	dir := types.Down
	if toFloor > fromFloor {
		dir = types.Up
	}
	return types.RideRequest{
		ID:        id,
		FromFloor: fromFloor,
		ToFloor:   toFloor,
		Direction: dir,
	}
}

// Assign returns a copy of snapshot where the elevator at index owns request.
//   - appends the request to the elevator's pending requests
//   - adds the pickup floor to its targets
//   - starts an idle elevator moving towards the pickup floor
func Assign(snapshot types.Snapshot, index int, request types.RideRequest) types.Snapshot {
	elevators := make([]types.Elevator, len(snapshot.Elevators))
	copy(elevators, snapshot.Elevators)

	elevator := elevators[index]
	requests := make([]types.RideRequest, len(elevator.Requests), len(elevator.Requests)+1)
	copy(requests, elevator.Requests)
	elevator.Requests = append(requests, request)

	if !elev.HasTarget(elevator, request.FromFloor) {
		slog.Debug("Added target floor", "elevator", elevator.ID, "floor", request.FromFloor)
		elevator.TargetFloors = elev.AddTarget(elevator.TargetFloors, request.FromFloor)
	}

	if elevator.Status == types.Idle {
		switch {
		case request.FromFloor > elevator.CurrentFloor:
			elevator.Status = types.MovingUp
		case request.FromFloor < elevator.CurrentFloor:
			elevator.Status = types.MovingDown
		}
	}

	elevators[index] = elevator
	return types.Snapshot{
		Elevators:  elevators,
		FloorCount: snapshot.FloorCount,
	}
}

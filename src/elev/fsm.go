// Per-tick state machine for a single elevator.
package elev

import (
	"log/slog"

	"liftsim/src/types"
)

// Step advances one elevator by one tick. The elevator moves at most one floor;
// the value passed in is left untouched.
func Step(elevator types.Elevator) types.Elevator {
	if elevator.Status == types.Idle {
		elevator.CurrentPassengerCount = 0
		return stepIdle(elevator)
	}

	switch elevator.Status {
	case types.MovingUp:
		elevator.CurrentFloor++
	case types.MovingDown:
		elevator.CurrentFloor--
	}

	if HasTarget(elevator, elevator.CurrentFloor) {
		slog.Debug("Elevator arrived at target floor", "elevator", elevator.ID, "floor", elevator.CurrentFloor)
		elevator = HandleArrival(elevator)
	}

	return updateStatus(elevator)
}

// StepAll advances every elevator once. Elevators are independent of each other.
func StepAll(snapshot types.Snapshot) types.Snapshot {
	elevators := make([]types.Elevator, len(snapshot.Elevators))
	for i, elevator := range snapshot.Elevators {
		elevators[i] = Step(elevator)
	}
	return types.Snapshot{
		Elevators:  elevators,
		FloorCount: snapshot.FloorCount,
	}
}

// stepIdle picks up the oldest pending request and starts moving towards the
// next target. If that target is the current floor it is served right away.
func stepIdle(elevator types.Elevator) types.Elevator {
	if len(elevator.Requests) > 0 {
		elevator.TargetFloors = AddTarget(elevator.TargetFloors, elevator.Requests[0].FromFloor)
	}
	if len(elevator.TargetFloors) == 0 {
		return elevator
	}

	next := NextTargetFloor(elevator)
	switch {
	case next > elevator.CurrentFloor:
		elevator.Status = types.MovingUp
	case next < elevator.CurrentFloor:
		elevator.Status = types.MovingDown
	default:
		elevator = HandleArrival(elevator)
	}
	slog.Debug("Idle elevator evaluated", "elevator", elevator.ID, "next", next, "status", elevator.Status)
	return elevator
}

func updateStatus(elevator types.Elevator) types.Elevator {
	if len(elevator.TargetFloors) == 0 {
		elevator.Status = types.Idle
		elevator.CurrentPassengerCount = 0
		return elevator
	}

	next := NextTargetFloor(elevator)
	switch {
	case next > elevator.CurrentFloor:
		elevator.Status = types.MovingUp
	case next < elevator.CurrentFloor:
		elevator.Status = types.MovingDown
	}
	return elevator
}

package dispatcher

import "liftsim/src/types"

// score rates how well an elevator fits a pickup at requestedFloor going dir.
//   - penalizes distance to the pickup floor
//   - penalizes passengers on board and pending stops
//   - rewards idle elevators and elevators already heading towards the floor
func score(elevator types.Elevator, requestedFloor int, dir types.Direction) int {
	return distanceScore(elevator, requestedFloor) +
		loadScore(elevator) +
		directionScore(elevator, requestedFloor, dir)
}

func distanceScore(elevator types.Elevator, requestedFloor int) int {
	return abs(elevator.CurrentFloor-requestedFloor) * distanceWeight
}

func loadScore(elevator types.Elevator) int {
	return elevator.CurrentPassengerCount*passengerCountWeight +
		len(elevator.TargetFloors)*targetFloorsWeight
}

func directionScore(elevator types.Elevator, requestedFloor int, dir types.Direction) int {
	if elevator.Status == types.Idle {
		return idleBonus
	}

	elevatorDir := types.Down
	if elevator.Status == types.MovingUp {
		elevatorDir = types.Up
	}
	if elevatorDir != dir {
		return oppositeDirection
	}

	ahead := (dir == types.Up && requestedFloor > elevator.CurrentFloor) ||
		(dir == types.Down && requestedFloor < elevator.CurrentFloor)
	if ahead {
		return sameDirectionAhead
	}
	return sameDirectionBehind
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

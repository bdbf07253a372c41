package elev

import (
	"slices"

	"liftsim/src/types"
)

// NextTargetFloor picks the floor the elevator should head to next.
//   - keeps the current direction while there are targets ahead of it
//   - otherwise takes the closest target, earliest in the list on ties
//   - returns the current floor when there are no targets
func NextTargetFloor(elevator types.Elevator) int {
	if len(elevator.TargetFloors) == 0 {
		return elevator.CurrentFloor
	}

	switch elevator.Status {
	case types.MovingUp:
		if floor, ok := targetAbove(elevator); ok {
			return floor
		}
	case types.MovingDown:
		if floor, ok := targetBelow(elevator); ok {
			return floor
		}
	}
	return closestTarget(elevator)
}

// targetAbove returns the lowest target strictly above the current floor.
func targetAbove(elevator types.Elevator) (int, bool) {
	best, found := 0, false
	for _, floor := range elevator.TargetFloors {
		if floor > elevator.CurrentFloor && (!found || floor < best) {
			best, found = floor, true
		}
	}
	return best, found
}

// targetBelow returns the highest target strictly below the current floor.
func targetBelow(elevator types.Elevator) (int, bool) {
	best, found := 0, false
	for _, floor := range elevator.TargetFloors {
		if floor < elevator.CurrentFloor && (!found || floor > best) {
			best, found = floor, true
		}
	}
	return best, found
}

func closestTarget(elevator types.Elevator) int {
	// MinFunc returns the first minimal element, which keeps list order on ties.
	return slices.MinFunc(elevator.TargetFloors, func(a, b int) int {
		return distance(a, elevator.CurrentFloor) - distance(b, elevator.CurrentFloor)
	})
}

func distance(from, to int) int {
	if from < to {
		return to - from
	}
	return from - to
}

// HasTarget reports whether floor is one of the elevator's target floors.
func HasTarget(elevator types.Elevator, floor int) bool {
	return slices.Contains(elevator.TargetFloors, floor)
}

// AddTarget returns floors with floor appended, or floors unchanged if it is
// already present. The input slice is never written to.
func AddTarget(floors []int, floor int) []int {
	if slices.Contains(floors, floor) {
		return floors
	}
	out := make([]int, len(floors), len(floors)+1)
	copy(out, floors)
	return append(out, floor)
}

func removeTarget(floors []int, floor int) []int {
	out := make([]int, 0, len(floors))
	for _, f := range floors {
		if f != floor {
			out = append(out, f)
		}
	}
	return out
}

package elev

import (
	"log/slog"

	"liftsim/src/types"
)

// HandleArrival serves the elevator's current floor: passengers waiting here
// board first, then passengers whose destination is here get off, and the floor
// is cleared from the targets.
//
// Requests from this floor that do not fit in the car are dropped along with
// the boarded ones rather than left queued.
func HandleArrival(elevator types.Elevator) types.Elevator {
	elevator = boardPassengers(elevator)
	elevator = alightPassengers(elevator)
	elevator.TargetFloors = removeTarget(elevator.TargetFloors, elevator.CurrentFloor)
	return elevator
}

func boardPassengers(elevator types.Elevator) types.Elevator {
	waiting := filterRequests(elevator.Requests, func(r types.RideRequest) bool {
		return r.FromFloor == elevator.CurrentFloor
	})
	if len(waiting) == 0 {
		return elevator
	}

	available := max(elevator.Capacity-elevator.CurrentPassengerCount, 0)
	boarding := min(available, len(waiting))

	for _, request := range waiting[:boarding] {
		elevator.TargetFloors = AddTarget(elevator.TargetFloors, request.ToFloor)
	}
	elevator.CurrentPassengerCount += boarding
	elevator.Requests = filterRequests(elevator.Requests, func(r types.RideRequest) bool {
		return r.FromFloor != elevator.CurrentFloor
	})

	if boarding < len(waiting) {
		slog.Warn("Car full, dropping waiting passengers",
			"elevator", elevator.ID,
			"floor", elevator.CurrentFloor,
			"dropped", len(waiting)-boarding)
	}
	slog.Debug("Passengers boarded",
		"elevator", elevator.ID,
		"floor", elevator.CurrentFloor,
		"boarded", boarding,
		"passengers", elevator.CurrentPassengerCount)
	return elevator
}

func alightPassengers(elevator types.Elevator) types.Elevator {
	leaving := filterRequests(elevator.Requests, func(r types.RideRequest) bool {
		return r.ToFloor == elevator.CurrentFloor
	})
	if len(leaving) == 0 {
		return elevator
	}

	elevator.CurrentPassengerCount = max(elevator.CurrentPassengerCount-len(leaving), 0)
	elevator.Requests = filterRequests(elevator.Requests, func(r types.RideRequest) bool {
		return r.ToFloor != elevator.CurrentFloor
	})

	slog.Debug("Passengers alighted",
		"elevator", elevator.ID,
		"floor", elevator.CurrentFloor,
		"alighted", len(leaving),
		"passengers", elevator.CurrentPassengerCount)
	return elevator
}

// filterRequests returns a new slice with the requests that satisfy keep.
func filterRequests(requests []types.RideRequest, keep func(types.RideRequest) bool) []types.RideRequest {
	out := make([]types.RideRequest, 0, len(requests))
	for _, r := range requests {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

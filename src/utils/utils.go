package utils

import (
	"fmt"
	"strings"

	"liftsim/src/types"
)

// ForEachRequest calls action for every pending request in the snapshot,
// elevator by elevator in list order.
func ForEachRequest(snapshot types.Snapshot, action func(elevator types.Elevator, request types.RideRequest)) {
	for _, elevator := range snapshot.Elevators {
		for _, request := range elevator.Requests {
			action(elevator, request)
		}
	}
}

func FormatFloors(floors []int) string {
	parts := make([]string, len(floors))
	for i, floor := range floors {
		parts[i] = fmt.Sprint(floor)
	}
	return strings.Join(parts, ", ")
}

func FormatRequest(request types.RideRequest) string {
	return fmt.Sprintf("%d -> %d", request.FromFloor, request.ToFloor)
}

func FormatRequests(requests []types.RideRequest) string {
	parts := make([]string, len(requests))
	for i, request := range requests {
		parts[i] = FormatRequest(request)
	}
	return strings.Join(parts, ", ")
}

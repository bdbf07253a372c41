package executor

import (
	"fmt"
	"log/slog"

	"liftsim/src/types"
	"liftsim/src/utils"
)

// logStatus writes a summary of the whole bank after a tick.
func logStatus(snapshot types.Snapshot) {
	attrs := make([]any, 0, len(snapshot.Elevators)+2)
	attrs = append(attrs,
		slog.Int("totalElevators", len(snapshot.Elevators)),
		slog.Int("activeRequests", activeRequests(snapshot)))
	for _, elevator := range snapshot.Elevators {
		attrs = append(attrs, slog.Group(fmt.Sprintf("elevator%d", elevator.ID),
			slog.Int("floor", elevator.CurrentFloor),
			slog.String("status", elevator.Status.String()),
			slog.Int("pending", len(elevator.Requests)),
			slog.String("targets", utils.FormatFloors(elevator.TargetFloors)),
			slog.String("requests", utils.FormatRequests(elevator.Requests)),
			slog.Int("passengers", elevator.CurrentPassengerCount)))
	}
	slog.Info("Elevator system status", attrs...)
}

// logPending reports elevators that still have requests waiting.
func logPending(snapshot types.Snapshot) {
	for _, elevator := range snapshot.Elevators {
		if len(elevator.Requests) > 0 {
			slog.Info("Pending requests",
				"elevator", elevator.ID,
				"floor", elevator.CurrentFloor,
				"pending", len(elevator.Requests))
		}
	}
}

func activeRequests(snapshot types.Snapshot) int {
	count := 0
	utils.ForEachRequest(snapshot, func(types.Elevator, types.RideRequest) { count++ })
	return count
}

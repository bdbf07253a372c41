package dispatcher

import (
	"log/slog"

	"liftsim/src/types"
)

// SelectBestElevator returns the index of the elevator with the highest score
// for a pickup at requestedFloor going dir. Ties go to the lowest index. The
// snapshot is only read.
func SelectBestElevator(snapshot types.Snapshot, requestedFloor int, dir types.Direction) int {
	bestIndex := 0
	bestScore := 0
	for i, elevator := range snapshot.Elevators {
		s := score(elevator, requestedFloor, dir)
		if i == 0 || s > bestScore {
			bestIndex, bestScore = i, s
		}
	}

	slog.Debug("Selected elevator",
		"index", bestIndex,
		"score", bestScore,
		"floor", requestedFloor,
		"direction", dir)
	return bestIndex
}

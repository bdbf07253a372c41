package dispatcher

import (
	"testing"

	"liftsim/src/types"
)

func idleAt(id, floor int) types.Elevator {
	return types.Elevator{ID: id, CurrentFloor: floor, Status: types.Idle, Capacity: 8}
}

func TestSelectBestElevatorPrefersCloser(t *testing.T) {
	snapshot := types.Snapshot{
		FloorCount: 10,
		Elevators:  []types.Elevator{idleAt(0, 0), idleAt(1, 5)},
	}

	if got := SelectBestElevator(snapshot, 6, types.Up); got != 1 {
		t.Errorf("Expected elevator 1, got %d", got)
	}
}

func TestSelectBestElevatorPrefersElevatorOnItsWay(t *testing.T) {
	moving := types.Elevator{
		ID:           0,
		CurrentFloor: 3,
		Status:       types.MovingUp,
		TargetFloors: []int{8},
		Capacity:     8,
	}
	snapshot := types.Snapshot{
		FloorCount: 10,
		Elevators:  []types.Elevator{moving, idleAt(1, 5)},
	}

	if got := SelectBestElevator(snapshot, 4, types.Up); got != 0 {
		t.Errorf("Expected elevator 0, got %d", got)
	}
}

func TestSelectBestElevatorTieGoesToLowestIndex(t *testing.T) {
	snapshot := types.Snapshot{
		FloorCount: 10,
		Elevators:  []types.Elevator{idleAt(0, 2), idleAt(1, 2), idleAt(2, 2)},
	}

	for range 5 {
		if got := SelectBestElevator(snapshot, 7, types.Down); got != 0 {
			t.Fatalf("Expected elevator 0, got %d", got)
		}
	}
}

func TestSelectBestElevatorPenalizesOppositeDirection(t *testing.T) {
	down := types.Elevator{ID: 0, CurrentFloor: 4, Status: types.MovingDown, TargetFloors: []int{0}}
	snapshot := types.Snapshot{
		FloorCount: 10,
		Elevators:  []types.Elevator{down, idleAt(1, 6)},
	}

	if got := SelectBestElevator(snapshot, 4, types.Up); got != 1 {
		t.Errorf("Expected elevator 1, got %d", got)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		elevator types.Elevator
		floor    int
		dir      types.Direction
		want     int
	}{
		{"idle", types.Elevator{CurrentFloor: 5, Status: types.Idle}, 6, types.Up, -2 + 2},
		{"ahead", types.Elevator{CurrentFloor: 3, Status: types.MovingUp, TargetFloors: []int{8}}, 4, types.Up, -2 - 1 + 3},
		{"behind", types.Elevator{CurrentFloor: 6, Status: types.MovingUp, TargetFloors: []int{8}}, 4, types.Up, -4 - 1 - 3},
		{"opposite", types.Elevator{CurrentFloor: 6, Status: types.MovingDown, CurrentPassengerCount: 2}, 4, types.Up, -4 - 2 - 5},
		{"down ahead", types.Elevator{CurrentFloor: 6, Status: types.MovingDown}, 2, types.Down, -8 + 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := score(tt.elevator, tt.floor, tt.dir); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

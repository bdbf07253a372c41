package elev

import (
	"slices"
	"testing"

	"liftsim/src/types"
)

func request(id string, from, to int) types.RideRequest {
	dir := types.Down
	if to > from {
		dir = types.Up
	}
	return types.RideRequest{ID: id, FromFloor: from, ToFloor: to, Direction: dir}
}

func TestHandleArrivalCapacityOverflow(t *testing.T) {
	e := types.Elevator{
		CurrentFloor: 2,
		Status:       types.MovingUp,
		TargetFloors: []int{2},
		Capacity:     2,
		Requests: []types.RideRequest{
			request("a", 2, 5),
			request("b", 2, 6),
			request("c", 2, 8),
		},
	}

	got := HandleArrival(e)

	if got.CurrentPassengerCount != 2 {
		t.Errorf("Expected 2 passengers, got %d", got.CurrentPassengerCount)
	}
	if !slices.Equal(got.TargetFloors, []int{5, 6}) {
		t.Errorf("Expected targets [5 6], got %v", got.TargetFloors)
	}
	if len(got.Requests) != 0 {
		t.Errorf("Expected all requests removed, got %v", got.Requests)
	}

	// The caller's value is untouched.
	if len(e.Requests) != 3 || !slices.Equal(e.TargetFloors, []int{2}) {
		t.Errorf("Expected input unchanged, got requests %v targets %v", e.Requests, e.TargetFloors)
	}
}

func TestHandleArrivalFullCarBoardsNobody(t *testing.T) {
	e := types.Elevator{
		CurrentFloor:          4,
		TargetFloors:          []int{4, 9},
		Capacity:              3,
		CurrentPassengerCount: 3,
		Requests:              []types.RideRequest{request("a", 4, 0)},
	}

	got := HandleArrival(e)

	if got.CurrentPassengerCount != 3 {
		t.Errorf("Expected 3 passengers, got %d", got.CurrentPassengerCount)
	}
	if !slices.Equal(got.TargetFloors, []int{9}) {
		t.Errorf("Expected targets [9], got %v", got.TargetFloors)
	}
	if len(got.Requests) != 0 {
		t.Errorf("Expected dropped request, got %v", got.Requests)
	}
}

func TestHandleArrivalAlighting(t *testing.T) {
	e := types.Elevator{
		CurrentFloor:          6,
		TargetFloors:          []int{6, 1},
		Capacity:              8,
		CurrentPassengerCount: 1,
		Requests: []types.RideRequest{
			request("a", 3, 6),
			request("b", 2, 6),
			request("c", 1, 4),
		},
	}

	got := HandleArrival(e)

	if got.CurrentPassengerCount != 0 {
		t.Errorf("Expected count clamped to 0, got %d", got.CurrentPassengerCount)
	}
	if len(got.Requests) != 1 || got.Requests[0].ID != "c" {
		t.Errorf("Expected only request c left, got %v", got.Requests)
	}
	if !slices.Equal(got.TargetFloors, []int{1}) {
		t.Errorf("Expected targets [1], got %v", got.TargetFloors)
	}
}

func TestHandleArrivalBoardsBeforeAlighting(t *testing.T) {
	e := types.Elevator{
		CurrentFloor:          3,
		TargetFloors:          []int{3},
		Capacity:              1,
		CurrentPassengerCount: 1,
		Requests: []types.RideRequest{
			request("waiting", 3, 7),
			request("leaving", 0, 3),
		},
	}

	got := HandleArrival(e)

	// The car is still full while boarding runs, so the waiting rider is dropped.
	if len(got.Requests) != 0 {
		t.Errorf("Expected no requests, got %v", got.Requests)
	}
	if got.CurrentPassengerCount != 0 {
		t.Errorf("Expected 0 passengers, got %d", got.CurrentPassengerCount)
	}
	if len(got.TargetFloors) != 0 {
		t.Errorf("Expected no targets, got %v", got.TargetFloors)
	}
}

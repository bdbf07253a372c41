package types

import "fmt"

type Status int

const (
	Idle Status = iota
	MovingUp
	MovingDown
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case MovingUp:
		return "MOVING_UP"
	case MovingDown:
		return "MOVING_DOWN"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "IDLE":
		*s = Idle
	case "MOVING_UP":
		*s = MovingUp
	case "MOVING_DOWN":
		*s = MovingDown
	default:
		return fmt.Errorf("unknown elevator status %q", text)
	}
	return nil
}

// Direction of travel requested by a passenger.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "UP":
		*d = Up
	case "DOWN":
		*d = Down
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// RideRequest is a passenger's origin/destination pair. It is never modified
// after creation and is owned by exactly one elevator until served.
type RideRequest struct {
	ID        string    `json:"id"`
	FromFloor int       `json:"fromFloor"`
	ToFloor   int       `json:"toFloor"`
	Direction Direction `json:"direction"`
}

type Elevator struct {
	ID                    int           `json:"id"`
	CurrentFloor          int           `json:"currentFloor"`
	Status                Status        `json:"status"`
	TargetFloors          []int         `json:"targetFloors"`
	Requests              []RideRequest `json:"requests"`
	Capacity              int           `json:"capacity"`
	CurrentPassengerCount int           `json:"currentPassengerCount"`
}

// Snapshot is the complete state of the elevator bank at one point in time.
// A published snapshot is never modified; every change produces a new one.
type Snapshot struct {
	Elevators  []Elevator `json:"elevators"`
	FloorCount int        `json:"floorCount"`
}

// RequestResult reports the outcome of a request submission.
type RequestResult struct {
	Success    bool         `json:"success"`
	ElevatorID *int         `json:"elevatorId,omitempty"`
	Request    *RideRequest `json:"request,omitempty"`
	Message    string       `json:"message,omitempty"`
}

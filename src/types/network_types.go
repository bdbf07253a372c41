package types

import "encoding/json"

type CommandKind string

const (
	GetElevatorsCmd    CommandKind = "elevators"
	GetElevatorCmd     CommandKind = "elevator"
	RequestCmd         CommandKind = "request"
	StartSimulationCmd CommandKind = "start-simulation"
	StopSimulationCmd  CommandKind = "stop-simulation"
	StartGeneratorCmd  CommandKind = "start-generator"
	StopGeneratorCmd   CommandKind = "stop-generator"
)

// Command is sent by a client on its own stream. Only the fields relevant to
// Kind are read.
type Command struct {
	Kind       CommandKind `json:"kind"`
	ElevatorID int         `json:"elevatorId,omitempty"`
	FromFloor  int         `json:"fromFloor,omitempty"`
	ToFloor    int         `json:"toFloor,omitempty"`
}

type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Assignment is the payload of a successful request command.
type Assignment struct {
	ElevatorID int         `json:"elevatorId"`
	Request    RideRequest `json:"request"`
}

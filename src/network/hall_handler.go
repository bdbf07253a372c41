package network

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"liftsim/src/types"
)

// handleCommand runs cmd against the backend and builds the reply.
func handleCommand(backend Backend, cmd types.Command) types.Response {
	slog.Debug("Handling command", "kind", cmd.Kind)
	switch cmd.Kind {
	case types.GetElevatorsCmd:
		return dataResponse(backend.Snapshot().Elevators)

	case types.GetElevatorCmd:
		elevator, ok := backend.Elevator(cmd.ElevatorID)
		if !ok {
			return failure("Elevator not found")
		}
		return dataResponse(elevator)

	case types.RequestCmd:
		result := backend.SubmitRequest(cmd.FromFloor, cmd.ToFloor)
		if !result.Success {
			return failure(result.Message)
		}
		return dataResponse(types.Assignment{
			ElevatorID: *result.ElevatorID,
			Request:    *result.Request,
		})

	case types.StartSimulationCmd:
		return controlResponse(backend.StartSimulation(), "Simulation started successfully")
	case types.StopSimulationCmd:
		return controlResponse(backend.StopSimulation(), "Simulation stopped successfully")
	case types.StartGeneratorCmd:
		return controlResponse(backend.StartGenerator(), "Successfully restarted random request generation")
	case types.StopGeneratorCmd:
		return controlResponse(backend.StopGenerator(), "Successfully stopped random request generation")
	}
	return failure(fmt.Sprintf("unknown command %q", cmd.Kind))
}

func dataResponse(data any) types.Response {
	raw, err := json.Marshal(data)
	if err != nil {
		return failure("encode response: " + err.Error())
	}
	return types.Response{Success: true, Data: raw}
}

func controlResponse(err error, message string) types.Response {
	if err != nil {
		return failure(err.Error())
	}
	return types.Response{Success: true, Message: message}
}

func failure(message string) types.Response {
	return types.Response{Success: false, Message: message}
}

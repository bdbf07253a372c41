package network

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"liftsim/src/types"
)

// ParseCommand reads the command line form of a command:
//
//	elevators
//	elevator:<id>
//	request:<from>,<to>
//	start-simulation | stop-simulation | start-generator | stop-generator
func ParseCommand(s string) (types.Command, error) {
	kind, args, hasArgs := strings.Cut(strings.TrimSpace(s), ":")
	cmd := types.Command{Kind: types.CommandKind(kind)}

	switch cmd.Kind {
	case types.GetElevatorCmd:
		id, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return cmd, fmt.Errorf("elevator id %q: %w", args, err)
		}
		cmd.ElevatorID = id

	case types.RequestCmd:
		from, to, ok := strings.Cut(args, ",")
		if !ok {
			return cmd, fmt.Errorf("request needs <from>,<to>, got %q", args)
		}
		var err error
		if cmd.FromFloor, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
			return cmd, fmt.Errorf("from floor %q: %w", from, err)
		}
		if cmd.ToFloor, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
			return cmd, fmt.Errorf("to floor %q: %w", to, err)
		}

	case types.GetElevatorsCmd, types.StartSimulationCmd, types.StopSimulationCmd,
		types.StartGeneratorCmd, types.StopGeneratorCmd:
		if hasArgs {
			return cmd, fmt.Errorf("%s takes no arguments", kind)
		}

	default:
		return cmd, fmt.Errorf("unknown command %q", kind)
	}
	return cmd, nil
}

// DialAddress turns a listen address such as ":4242" into one a client can
// dial.
func DialAddress(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}

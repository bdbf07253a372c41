package network

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"liftsim/src/system"
	"liftsim/src/types"
)

// testBackend serves a real system and records loop changes.
type testBackend struct {
	*system.System
	simulation bool
	generator  bool
}

func toggle(state *bool, want bool, name string) error {
	if *state == want {
		return errors.New(name + " unchanged")
	}
	*state = want
	return nil
}

func (b *testBackend) StartSimulation() error { return toggle(&b.simulation, true, "simulation") }
func (b *testBackend) StopSimulation() error  { return toggle(&b.simulation, false, "simulation") }
func (b *testBackend) StartGenerator() error  { return toggle(&b.generator, true, "generator") }
func (b *testBackend) StopGenerator() error   { return toggle(&b.generator, false, "generator") }

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	sys, err := system.New(2, 10, 8)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	t.Cleanup(sys.Close)
	return &testBackend{System: sys}
}

func decode[T any](t *testing.T, resp types.Response) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		t.Fatalf("decode %s: %v", resp.Data, err)
	}
	return out
}

func TestHandleCommand(t *testing.T) {
	backend := newTestBackend(t)

	resp := handleCommand(backend, types.Command{Kind: types.RequestCmd, FromFloor: 2, ToFloor: 7})
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.Message)
	}
	assignment := decode[types.Assignment](t, resp)
	if assignment.Request.FromFloor != 2 || assignment.Request.ToFloor != 7 || assignment.Request.Direction != types.Up {
		t.Errorf("Expected UP request 2 -> 7, got %+v", assignment.Request)
	}

	resp = handleCommand(backend, types.Command{Kind: types.GetElevatorCmd, ElevatorID: assignment.ElevatorID})
	elevator := decode[types.Elevator](t, resp)
	if len(elevator.Requests) != 1 || elevator.Requests[0].ID != assignment.Request.ID {
		t.Errorf("Expected assigned request on elevator, got %+v", elevator)
	}

	resp = handleCommand(backend, types.Command{Kind: types.GetElevatorsCmd})
	if elevators := decode[[]types.Elevator](t, resp); len(elevators) != 2 {
		t.Errorf("Expected 2 elevators, got %d", len(elevators))
	}
}

func TestHandleCommandFailures(t *testing.T) {
	backend := newTestBackend(t)

	tests := []struct {
		name    string
		cmd     types.Command
		message string
	}{
		{"unknown elevator", types.Command{Kind: types.GetElevatorCmd, ElevatorID: 7}, "Elevator not found"},
		{"same floor", types.Command{Kind: types.RequestCmd, FromFloor: 3, ToFloor: 3}, ""},
		{"out of range", types.Command{Kind: types.RequestCmd, FromFloor: 3, ToFloor: 12}, ""},
		{"unknown kind", types.Command{Kind: "reboot"}, `unknown command "reboot"`},
		{"stop idle loop", types.Command{Kind: types.StopSimulationCmd}, "simulation unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := handleCommand(backend, tt.cmd)
			if resp.Success {
				t.Fatal("Expected failure")
			}
			if resp.Message == "" || (tt.message != "" && resp.Message != tt.message) {
				t.Errorf("Expected message %q, got %q", tt.message, resp.Message)
			}
		})
	}
}

func TestHandleControlCommands(t *testing.T) {
	backend := newTestBackend(t)

	for _, kind := range []types.CommandKind{types.StartSimulationCmd, types.StartGeneratorCmd} {
		if resp := handleCommand(backend, types.Command{Kind: kind}); !resp.Success || resp.Message == "" {
			t.Errorf("%s: expected success with a message, got %+v", kind, resp)
		}
	}
	if !backend.simulation || !backend.generator {
		t.Error("Expected both loops started")
	}
	if resp := handleCommand(backend, types.Command{Kind: types.StopGeneratorCmd}); !resp.Success {
		t.Errorf("Expected success, got %q", resp.Message)
	}
	if backend.generator {
		t.Error("Expected generator stopped")
	}
}

func TestRoundTrip(t *testing.T) {
	backend := newTestBackend(t)

	srv, err := Listen("127.0.0.1:0", backend)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ctx) }()

	client, err := Dial(ctx, srv.Addr().String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer client.Close()

	resp, err := client.Do(ctx, types.Command{Kind: types.RequestCmd, FromFloor: 0, ToFloor: 4})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.Message)
	}

	resp, err = client.Do(ctx, types.Command{Kind: types.GetElevatorsCmd})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	pending := 0
	for _, e := range decode[[]types.Elevator](t, resp) {
		pending += len(e.Requests)
	}
	if pending != 1 {
		t.Errorf("Expected 1 pending request, got %d", pending)
	}

	resp, err = client.Do(ctx, types.Command{Kind: types.GetElevatorCmd, ElevatorID: 42})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Success || resp.Message != "Elevator not found" {
		t.Errorf("Expected not found, got %+v", resp)
	}

	if got := srv.Clients(); got != 1 {
		t.Errorf("Expected 1 client, got %d", got)
	}

	if err := srv.Close(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	select {
	case err := <-served:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Expected Serve to return after Close")
	}
}

package network

import (
	"testing"

	"liftsim/src/types"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want types.Command
	}{
		{"elevators", types.Command{Kind: types.GetElevatorsCmd}},
		{"elevator:2", types.Command{Kind: types.GetElevatorCmd, ElevatorID: 2}},
		{"request:3,7", types.Command{Kind: types.RequestCmd, FromFloor: 3, ToFloor: 7}},
		{" request: 9 , 0 ", types.Command{Kind: types.RequestCmd, FromFloor: 9, ToFloor: 0}},
		{"start-simulation", types.Command{Kind: types.StartSimulationCmd}},
		{"stop-generator", types.Command{Kind: types.StopGeneratorCmd}},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.in)
		if err != nil {
			t.Errorf("%q: expected no error, got %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, in := range []string{"", "reboot", "elevator", "elevator:x", "request:3", "request:a,2", "request:2,b", "elevators:1"} {
		if _, err := ParseCommand(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestDialAddress(t *testing.T) {
	tests := map[string]string{
		":4242":          "localhost:4242",
		"127.0.0.1:4242": "127.0.0.1:4242",
		"example.com:80": "example.com:80",
		"no-port":        "no-port",
	}
	for in, want := range tests {
		if got := DialAddress(in); got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

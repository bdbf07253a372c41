package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"

	"liftsim/src/system"
)

func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	sys, err := system.New(2, 10, 8)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	t.Cleanup(sys.Close)

	var out bytes.Buffer
	return New(sys, &out), &out
}

func TestHandleKeyQuit(t *testing.T) {
	c, _ := newTestConsole(t)

	if !c.handleKey('q', 0) {
		t.Error("Expected q to quit")
	}
	if !c.handleKey(0, keyboard.KeyEsc) {
		t.Error("Expected Esc to quit")
	}
	if !c.handleKey(0, keyboard.KeyCtrlC) {
		t.Error("Expected Ctrl-C to quit")
	}
	if c.handleKey('x', 0) {
		t.Error("Expected x to be ignored")
	}
}

func TestHandleKeyShowsElevators(t *testing.T) {
	c, out := newTestConsole(t)

	c.handleKey('s', 0)

	for _, want := range []string{"Elevator 0: floor 0 IDLE", "Elevator 1: floor 0 IDLE", "passengers 0/8"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestHandleKeyRandomRequestAndTick(t *testing.T) {
	c, out := newTestConsole(t)

	c.handleKey('r', 0)
	if !strings.Contains(out.String(), "assigned") {
		t.Errorf("Expected an assignment, got:\n%s", out.String())
	}

	out.Reset()
	c.handleKey('t', 0)
	if !strings.Contains(out.String(), "Elevator 0:") {
		t.Errorf("Expected the snapshot after a tick, got:\n%s", out.String())
	}
}

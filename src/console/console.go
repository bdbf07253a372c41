// Package console is a keyboard driven debug front end for a running
// simulation.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/eiannone/keyboard"

	"liftsim/src/types"
	"liftsim/src/utils"
)

type Backend interface {
	Snapshot() types.Snapshot
	SubmitRandomRequest() types.RequestResult
	AdvanceTick() types.Snapshot
}

type Console struct {
	backend Backend
	out     io.Writer
}

func New(backend Backend, out io.Writer) *Console {
	return &Console{backend: backend, out: out}
}

// Run reads single key presses until the user quits or ctx is cancelled.
// A cancelled ctx is noticed after the next key press.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "t: tick, r: random request, s: show elevators, q: quit")
	for ctx.Err() == nil {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if c.handleKey(char, key) {
			return nil
		}
	}
	return nil
}

// handleKey reports whether the console should exit.
func (c *Console) handleKey(char rune, key keyboard.Key) bool {
	switch {
	case key == keyboard.KeyCtrlC || key == keyboard.KeyEsc || char == 'q' || char == 'Q':
		fmt.Fprintln(c.out, "Exit")
		return true

	case char == 't' || char == 'T':
		c.printSnapshot(c.backend.AdvanceTick())

	case char == 'r' || char == 'R':
		result := c.backend.SubmitRandomRequest()
		if !result.Success {
			fmt.Fprintln(c.out, "Request rejected:", result.Message)
			break
		}
		fmt.Fprintf(c.out, "Elevator %d assigned %s\n", *result.ElevatorID, utils.FormatRequest(*result.Request))

	case char == 's' || char == 'S':
		c.printSnapshot(c.backend.Snapshot())

	default:
		slog.Debug("Ignoring key", "char", string(char), "key", key)
	}
	return false
}

func (c *Console) printSnapshot(snapshot types.Snapshot) {
	if len(snapshot.Elevators) == 0 {
		fmt.Fprintln(c.out, "No elevators!")
		return
	}
	fmt.Fprintln(c.out, "-------------------------------")
	for _, e := range snapshot.Elevators {
		fmt.Fprintf(c.out, "Elevator %d: floor %d %s, targets [%s], passengers %d/%d, requests [%s]\n",
			e.ID, e.CurrentFloor, e.Status, utils.FormatFloors(e.TargetFloors),
			e.CurrentPassengerCount, e.Capacity, utils.FormatRequests(e.Requests))
	}
	fmt.Fprintln(c.out, "-------------------------------")
}

package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"liftsim/src/system"
	"liftsim/src/timer"
	"liftsim/src/types"
)

var (
	ErrAlreadyRunning = errors.New("already running")
	ErrNotRunning     = errors.New("not running")
	ErrStopped        = errors.New("executor stopped")
)

type loop int

const (
	simulationLoop loop = iota
	generatorLoop
)

func (l loop) String() string {
	if l == simulationLoop {
		return "simulation"
	}
	return "request generator"
}

type actionMsg struct {
	loop   loop
	action timer.TimerAction
	reply  chan error
}

// Status reports which periodic loops are active.
type Status struct {
	Simulation bool `json:"simulation"`
	Generator  bool `json:"generator"`
}

// Executor drives a system: it advances a tick every tick interval and
// submits a random request every request interval. Both loops can be started
// and stopped independently while Run is active.
type Executor struct {
	sys       *system.System
	tick      *timer.Periodic
	generator *timer.Periodic
	actionCh  chan actionMsg
	statusCh  chan chan Status
	done      chan struct{}
}

func New(sys *system.System, tickInterval, requestInterval time.Duration) *Executor {
	return &Executor{
		sys:       sys,
		tick:      timer.NewPeriodic("tick", tickInterval),
		generator: timer.NewPeriodic("request-generator", requestInterval),
		actionCh:  make(chan actionMsg),
		statusCh:  make(chan chan Status),
		done:      make(chan struct{}),
	}
}

// Run is called once, in its own goroutine. It returns when ctx is cancelled.
func (e *Executor) Run(ctx context.Context) {
	defer close(e.done)
	defer e.tick.Apply(timer.Stop)
	defer e.generator.Apply(timer.Stop)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Executor shutting down")
			return

		case msg := <-e.actionCh:
			msg.reply <- e.apply(msg.loop, msg.action)

		case reply := <-e.statusCh:
			reply <- e.status()

		case <-e.tick.C():
			snapshot := e.sys.AdvanceTick()
			logStatus(snapshot)

		case <-e.generator.C():
			result := e.sys.SubmitRandomRequest()
			if !result.Success {
				slog.Warn("Random request rejected", "reason", result.Message)
			}
			logPending(e.sys.Snapshot())
		}
	}
}

func (e *Executor) StartSimulation() error { return e.send(simulationLoop, timer.Start) }
func (e *Executor) StopSimulation() error  { return e.send(simulationLoop, timer.Stop) }
func (e *Executor) StartGenerator() error  { return e.send(generatorLoop, timer.Start) }
func (e *Executor) StopGenerator() error   { return e.send(generatorLoop, timer.Stop) }

// Running returns the state of both loops. After Run has returned both are
// reported stopped.
func (e *Executor) Running() Status {
	reply := make(chan Status, 1)
	select {
	case e.statusCh <- reply:
		return <-reply
	case <-e.done:
		return Status{}
	}
}

func (e *Executor) Snapshot() types.Snapshot {
	return e.sys.Snapshot()
}

func (e *Executor) Elevator(id int) (types.Elevator, bool) {
	return e.sys.Elevator(id)
}

func (e *Executor) SubmitRequest(fromFloor, toFloor int) types.RequestResult {
	return e.sys.SubmitRequest(fromFloor, toFloor)
}

func (e *Executor) SubmitRandomRequest() types.RequestResult {
	return e.sys.SubmitRandomRequest()
}

// AdvanceTick steps the system once outside the periodic loop.
func (e *Executor) AdvanceTick() types.Snapshot {
	snapshot := e.sys.AdvanceTick()
	logStatus(snapshot)
	return snapshot
}

func (e *Executor) send(l loop, action timer.TimerAction) error {
	reply := make(chan error, 1)
	select {
	case e.actionCh <- actionMsg{loop: l, action: action, reply: reply}:
		return <-reply
	case <-e.done:
		return ErrStopped
	}
}

func (e *Executor) apply(l loop, action timer.TimerAction) error {
	periodic := e.tick
	if l == generatorLoop {
		periodic = e.generator
	}

	if !periodic.Apply(action) {
		if action == timer.Start {
			return fmt.Errorf("%s is %w", l, ErrAlreadyRunning)
		}
		return fmt.Errorf("%s is %w", l, ErrNotRunning)
	}
	slog.Info("Executor loop changed", "loop", l, "action", action)
	return nil
}

func (e *Executor) status() Status {
	return Status{
		Simulation: e.tick.Running(),
		Generator:  e.generator.Running(),
	}
}

package timer

import (
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

func (a TimerAction) String() string {
	if a == Start {
		return "start"
	}
	return "stop"
}

// Periodic is a ticker that can be stopped and restarted. It is not safe for
// concurrent use; it is meant to be owned by a single select loop.
type Periodic struct {
	name     string
	interval time.Duration
	ticker   *time.Ticker
}

func NewPeriodic(name string, interval time.Duration) *Periodic {
	return &Periodic{name: name, interval: interval}
}

// C returns the tick channel, or nil while stopped so a select case on it
// never fires.
func (p *Periodic) C() <-chan time.Time {
	if p.ticker == nil {
		return nil
	}
	return p.ticker.C
}

func (p *Periodic) Running() bool {
	return p.ticker != nil
}

// Apply starts or stops the timer. It returns false if the timer was already
// in the requested state.
func (p *Periodic) Apply(action TimerAction) bool {
	switch action {
	case Start:
		if p.ticker != nil {
			return false
		}
		p.ticker = time.NewTicker(p.interval)
	case Stop:
		if p.ticker == nil {
			return false
		}
		p.ticker.Stop()
		p.ticker = nil
	}
	slog.Debug("Timer action applied", "timer", p.name, "action", action, "interval", p.interval)
	return true
}

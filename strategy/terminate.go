package strategy

import (
	"time"

	"github.com/zeu5/qtrain/mdp"
)

// Terminator decides, once per completed training step, whether training
// should stop. Implementations may carry state across calls.
type Terminator interface {
	// ShouldStop is called with the state the step ended in
	ShouldStop(s mdp.State) bool
}

// FixedIterations stops after exactly n steps: the first n-1 calls return
// false, the nth returns true.
type FixedIterations struct {
	i int
	n int
}

var _ Terminator = &FixedIterations{}

func NewFixedIterations(n int) *FixedIterations {
	return &FixedIterations{n: n}
}

func (f *FixedIterations) ShouldStop(_ mdp.State) bool {
	f.i++
	return f.i >= f.n
}

// SinkStates stops once the agent reaches a terminal state, one with no
// legal actions.
type SinkStates struct{}

var _ Terminator = SinkStates{}

func (SinkStates) ShouldStop(s mdp.State) bool {
	return len(s.Actions()) == 0
}

// TimeLimit stops once the wall-clock deadline passes. The training core has
// no timeout of its own, so the clock is polled on every step.
type TimeLimit struct {
	deadline time.Time
}

var _ Terminator = &TimeLimit{}

func NewTimeLimit(d time.Duration) *TimeLimit {
	return &TimeLimit{deadline: time.Now().Add(d)}
}

func (t *TimeLimit) ShouldStop(_ mdp.State) bool {
	return !time.Now().Before(t.deadline)
}

// TerminateFunc adapts a plain function to a Terminator.
type TerminateFunc func(mdp.State) bool

var _ Terminator = TerminateFunc(nil)

func (f TerminateFunc) ShouldStop(s mdp.State) bool {
	return f(s)
}

// Any stops as soon as one of the given terminators does. Every terminator
// is polled on every step, so stateful ones keep counting even after
// another has already signalled.
func Any(terminators ...Terminator) Terminator {
	return &anyTerminator{terminators: terminators}
}

type anyTerminator struct {
	terminators []Terminator
}

func (a *anyTerminator) ShouldStop(s mdp.State) bool {
	stop := false
	for _, t := range a.terminators {
		if t.ShouldStop(s) {
			stop = true
		}
	}
	return stop
}

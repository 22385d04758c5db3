// Package qtrain is a reusable tabular Q-learning framework. Implement the
// mdp.State and mdp.Agent contracts for your process, then create a Trainer
// and train it with an exploration, a learning and a termination strategy.
// After training, the Trainer answers value and greedy-policy queries.
package qtrain

import (
	"math"

	"github.com/zeu5/qtrain/mdp"
	"github.com/zeu5/qtrain/strategy"
)

// Trainer owns the learned value table and runs the training loop. The
// agent, the strategies and the table are exclusively owned by a Train call
// for its entire duration; a Trainer is not safe for concurrent use.
type Trainer struct {
	table     *ValueTable
	observers []StepObserver

	// TerminalValue is used as the best-next value when the state an action
	// led to has no legal actions. Zero by default.
	TerminalValue float64
}

var _ strategy.Values = &Trainer{}

// NewTrainer creates a Trainer with an empty value table.
func NewTrainer() *Trainer {
	return &Trainer{
		table:     NewValueTable(),
		observers: make([]StepObserver, 0),
	}
}

// AddObserver registers an observer notified after each value update.
func (t *Trainer) AddObserver(o StepObserver) {
	t.observers = append(t.observers, o)
}

// Train runs the step loop until the terminator signals stop, or until the
// agent reaches a state with no legal actions. The agent is mutated in
// place; the learned values accumulate into the trainer's table across
// calls.
func (t *Trainer) Train(agent mdp.Agent, learner strategy.Learner, terminator strategy.Terminator, explorer strategy.Explorer) {
	for step := 0; ; step++ {
		state := agent.CurrentState()
		action, ok := explorer.PickAction(state, t)
		if !ok {
			return
		}
		// hashes are captured before TakeAction invalidates the state
		stateHash := state.Hash()
		actionHash := action.Hash()
		old := t.table.Get(stateHash, actionHash, learner.Default())

		agent.TakeAction(action)
		nextState := agent.CurrentState()
		reward := agent.Reward()

		nextActions := nextState.Actions()
		bestNext := t.TerminalValue
		if len(nextActions) > 0 {
			hashes := make([]string, len(nextActions))
			for i, a := range nextActions {
				hashes[i] = a.Hash()
			}
			bestNext = t.table.BestOver(nextState.Hash(), hashes, learner.Default())
		}

		t.table.Set(stateHash, actionHash, learner.Update(old, reward, bestNext))

		for _, o := range t.observers {
			o.ObserveStep(step, stateHash, actionHash, nextState.Hash(), reward)
		}

		if terminator.ShouldStop(nextState) {
			return
		}
	}
}

// ExpectedValue returns the learned value for taking the action from the
// state, false when the pair has no learned value. A pair never visited is
// indistinguishable from one never stored.
func (t *Trainer) ExpectedValue(state mdp.State, action mdp.Action) (float64, bool) {
	return t.table.Lookup(state.Hash(), action.Hash())
}

// ExpectedValues returns a copy of the learned values for the state, keyed
// by action hash.
func (t *Trainer) ExpectedValues(state mdp.State) map[string]float64 {
	return t.table.ActionValues(state.Hash())
}

// BestAction returns the legal action with the highest learned value for
// the state. Ties keep the earliest action in the state's declared order.
// Returns false when the state has no legal actions or none of them has a
// learned value.
func (t *Trainer) BestAction(state mdp.State) (mdp.Action, bool) {
	stateHash := state.Hash()
	var best mdp.Action
	bestVal := math.Inf(-1)
	for _, a := range state.Actions() {
		val, ok := t.table.Lookup(stateHash, a.Hash())
		if !ok {
			continue
		}
		if best == nil || val > bestVal {
			best = a
			bestVal = val
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Export returns a deep copy of the learned values, keyed by state and
// action hash.
func (t *Trainer) Export() map[string]map[string]float64 {
	return t.table.Export()
}

// Import replaces the learned values, discarding any learned progress.
func (t *Trainer) Import(values map[string]map[string]float64) {
	t.table.Import(values)
}

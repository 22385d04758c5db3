package mdp

// State is a single configuration of the process being learned.
// States are indexed by their hash: two states with equal hashes are
// interchangeable as value-table keys, however they were produced.
type State interface {
	// Hash of the state, used to index learned values
	// Should be deterministic
	Hash() string
	// Actions legal from this state, in a stable declared order
	// An empty slice marks a terminal state
	Actions() []Action
}

// An Action that can be taken from a state
type Action interface {
	// Index of the action within its state's action set
	// Should be deterministic
	Hash() string
}

// Agent binds a mutable current state to action execution. A trainer owns
// the agent exclusively for the duration of a training call.
type Agent interface {
	// CurrentState returns the live state of the agent. The returned state
	// is only invalidated by the next TakeAction call.
	CurrentState() State
	// TakeAction applies the action to the current state, mutating the
	// agent in place. Applying an action that the current state did not
	// declare is undefined domain behavior, not checked here.
	TakeAction(Action)
	// Reward of the state produced by the most recent TakeAction call
	// Should be deterministic given the current state
	Reward() float64
}

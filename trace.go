package qtrain

// Trace of a training run as (state, action, nextState, reward) quadruples.
// States and actions are recorded by hash, which stays valid after the agent
// has mutated past them.
type Trace struct {
	states     []string
	actions    []string
	nextStates []string
	rewards    []float64
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]string, 0),
		actions:    make([]string, 0),
		nextStates: make([]string, 0),
		rewards:    make([]float64, 0),
	}
}

func (t *Trace) Append(state, action, nextState string, reward float64) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.nextStates = append(t.nextStates, nextState)
	t.rewards = append(t.rewards, reward)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (string, string, string, float64, bool) {
	if i >= len(t.states) {
		return "", "", "", 0, false
	}
	return t.states[i], t.actions[i], t.nextStates[i], t.rewards[i], true
}

func (t *Trace) Last() (string, string, string, float64, bool) {
	if len(t.states) < 1 {
		return "", "", "", 0, false
	}
	return t.Get(len(t.states) - 1)
}

func (t *Trace) Slice(from, to int) *Trace {
	return &Trace{
		states:     t.states[from:to],
		actions:    t.actions[from:to],
		nextStates: t.nextStates[from:to],
		rewards:    t.rewards[from:to],
	}
}

// StepObserver is notified after every completed training step, once the
// value update for the step has been stored. Observers receive state and
// action hashes.
type StepObserver interface {
	ObserveStep(step int, state, action, nextState string, reward float64)
}

// TraceRecorder accumulates the observed steps of a training run into a
// Trace.
type TraceRecorder struct {
	trace *Trace
}

var _ StepObserver = &TraceRecorder{}

func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{trace: NewTrace()}
}

func (r *TraceRecorder) ObserveStep(_ int, state, action, nextState string, reward float64) {
	r.trace.Append(state, action, nextState, reward)
}

func (r *TraceRecorder) Trace() *Trace {
	return r.trace
}

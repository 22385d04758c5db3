package qtrain

import "math"

// ValueTable is the learned mapping from (state, action) pairs to values,
// keyed by the state and action hashes. The table is populated lazily and
// grows monotonically: entries are only inserted or overwritten, never
// evicted, so the state space must be small enough to tabulate.
type ValueTable struct {
	table map[string]map[string]float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{
		table: make(map[string]map[string]float64),
	}
}

// Lookup returns the stored value for the pair, false when absent.
func (v *ValueTable) Lookup(state, action string) (float64, bool) {
	actions, ok := v.table[state]
	if !ok {
		return 0, false
	}
	val, ok := actions[action]
	return val, ok
}

// Get returns the stored value for the pair, or def when absent. The table
// is not modified either way.
func (v *ValueTable) Get(state, action string, def float64) float64 {
	if val, ok := v.Lookup(state, action); ok {
		return val
	}
	return def
}

// Set inserts or overwrites the value for the pair.
func (v *ValueTable) Set(state, action string, val float64) {
	if _, ok := v.table[state]; !ok {
		v.table[state] = make(map[string]float64)
	}
	v.table[state][action] = val
}

// BestOver returns the maximum value for the state over the given actions,
// substituting def for actions without an entry. Returns def when actions
// is empty.
func (v *ValueTable) BestOver(state string, actions []string, def float64) float64 {
	best := math.Inf(-1)
	for _, a := range actions {
		if val := v.Get(state, a, def); val > best {
			best = val
		}
	}
	if math.IsInf(best, -1) {
		return def
	}
	return best
}

// States returns the hashes of the states with at least one stored value.
func (v *ValueTable) States() []string {
	states := make([]string, 0, len(v.table))
	for s := range v.table {
		states = append(states, s)
	}
	return states
}

// ActionValues returns a copy of the stored values for the state, keyed by
// action hash. The copy is empty when nothing was learned for the state.
func (v *ValueTable) ActionValues(state string) map[string]float64 {
	out := make(map[string]float64, len(v.table[state]))
	for a, val := range v.table[state] {
		out[a] = val
	}
	return out
}

// Len returns the number of stored (state, action) entries.
func (v *ValueTable) Len() int {
	n := 0
	for _, actions := range v.table {
		n += len(actions)
	}
	return n
}

// Export returns a deep copy of the stored values.
func (v *ValueTable) Export() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(v.table))
	for s, actions := range v.table {
		out[s] = make(map[string]float64, len(actions))
		for a, val := range actions {
			out[s][a] = val
		}
	}
	return out
}

// Import replaces the stored values with a deep copy of values, discarding
// any learned progress.
func (v *ValueTable) Import(values map[string]map[string]float64) {
	v.table = make(map[string]map[string]float64, len(values))
	for s, actions := range values {
		v.table[s] = make(map[string]float64, len(actions))
		for a, val := range actions {
			v.table[s][a] = val
		}
	}
}

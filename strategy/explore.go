package strategy

import (
	"math/rand"
	"time"

	"github.com/zeu5/qtrain/mdp"
)

// Values is the read-only view of the learned value table that exploration
// strategies receive. Strategies that exploit learned values query it,
// purely exploratory ones ignore it.
type Values interface {
	// ExpectedValue of taking action a from state s
	// false when the pair has no learned value yet
	ExpectedValue(s mdp.State, a mdp.Action) (float64, bool)
}

// Explorer picks the next action to try during training.
type Explorer interface {
	// PickAction returns one action legal from s, or false when s has
	// no legal actions
	PickAction(s mdp.State, values Values) (mdp.Action, bool)
}

// RandomExploration samples uniformly from the legal actions.
type RandomExploration struct {
	rand *rand.Rand
}

var _ Explorer = &RandomExploration{}

func NewRandomExploration() *RandomExploration {
	return NewSeededRandomExploration(time.Now().UnixNano())
}

// NewSeededRandomExploration fixes the sampling seed, for reproducible runs.
func NewSeededRandomExploration(seed int64) *RandomExploration {
	return &RandomExploration{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomExploration) PickAction(s mdp.State, _ Values) (mdp.Action, bool) {
	actions := s.Actions()
	if len(actions) == 0 {
		return nil, false
	}
	return actions[r.rand.Intn(len(actions))], true
}

// EpsilonGreedy takes a uniformly random action with probability epsilon and
// the best known action otherwise. Actions without a learned value count as
// def when comparing, and ties keep the earliest declared action.
type EpsilonGreedy struct {
	epsilon float64
	def     float64
	rand    *rand.Rand
}

var _ Explorer = &EpsilonGreedy{}

func NewEpsilonGreedy(epsilon, def float64) *EpsilonGreedy {
	return NewSeededEpsilonGreedy(epsilon, def, time.Now().UnixNano())
}

func NewSeededEpsilonGreedy(epsilon, def float64, seed int64) *EpsilonGreedy {
	return &EpsilonGreedy{
		epsilon: epsilon,
		def:     def,
		rand:    rand.New(rand.NewSource(seed)),
	}
}

func (e *EpsilonGreedy) PickAction(s mdp.State, values Values) (mdp.Action, bool) {
	actions := s.Actions()
	if len(actions) == 0 {
		return nil, false
	}
	if e.rand.Float64() < e.epsilon {
		return actions[e.rand.Intn(len(actions))], true
	}
	best := actions[0]
	bestVal := e.value(s, actions[0], values)
	for _, a := range actions[1:] {
		if val := e.value(s, a, values); val > bestVal {
			best = a
			bestVal = val
		}
	}
	return best, true
}

func (e *EpsilonGreedy) value(s mdp.State, a mdp.Action, values Values) float64 {
	if val, ok := values.ExpectedValue(s, a); ok {
		return val
	}
	return e.def
}

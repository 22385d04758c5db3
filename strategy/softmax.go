package strategy

import (
	"math"
	"time"

	"github.com/zeu5/qtrain/mdp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Softmax samples an action with probability proportional to
// exp(value/tau). Higher temperatures tau flatten the distribution towards
// uniform, lower temperatures concentrate it on the best known actions.
// Actions without a learned value weigh in at def.
type Softmax struct {
	tau float64
	def float64
	src rand.Source
}

var _ Explorer = &Softmax{}

func NewSoftmax(tau, def float64) *Softmax {
	return NewSeededSoftmax(tau, def, uint64(time.Now().UnixNano()))
}

func NewSeededSoftmax(tau, def float64, seed uint64) *Softmax {
	return &Softmax{
		tau: tau,
		def: def,
		src: rand.NewSource(seed),
	}
}

func (s *Softmax) PickAction(state mdp.State, values Values) (mdp.Action, bool) {
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, false
	}

	sum := float64(0)
	weights := make([]float64, len(actions))
	for i, a := range actions {
		val, ok := values.ExpectedValue(state, a)
		if !ok {
			val = s.def
		}
		exp := math.Exp(val / s.tau)
		weights[i] = exp
		sum += exp
	}
	for i, w := range weights {
		weights[i] = w / sum
	}

	i, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return nil, false
	}
	return actions[i], true
}

package strategy

// Learner computes the new stored value for the (state, action) pair the
// agent just left. It is a pure function of its arguments, called once per
// training step.
type Learner interface {
	// Default is the value assumed for (state, action) pairs with no table
	// entry. The trainer substitutes it for absent entries before calling
	// Update, and for absent entries in the best-next lookup.
	Default() float64
	// Update combines the old stored value, the reward observed after the
	// action, and the best value achievable from the state the action led
	// to, into the value to store.
	Update(old, reward, bestNext float64) float64
}

// QLearning is the standard tabular Q-learning update
//
//	new = old + alpha*(reward + gamma*bestNext - old)
//
// with learning rate alpha in [0,1], discount factor gamma in [0,1] and an
// initial value assumed for pairs not learned yet.
type QLearning struct {
	alpha        float64
	gamma        float64
	initialValue float64
}

var _ Learner = &QLearning{}

func NewQLearning(alpha, gamma, initialValue float64) *QLearning {
	return &QLearning{
		alpha:        alpha,
		gamma:        gamma,
		initialValue: initialValue,
	}
}

func (q *QLearning) Default() float64 {
	return q.initialValue
}

func (q *QLearning) Update(old, reward, bestNext float64) float64 {
	return old + q.alpha*(reward+q.gamma*bestNext-old)
}

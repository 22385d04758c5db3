package analysis

import (
	"fmt"

	"github.com/zeu5/qtrain"
	"gonum.org/v1/gonum/stat"
)

// Generic DataSet that contains information after processing a trace
type DataSet interface{}

// Analyzer compresses the information in a training trace to a DataSet
type Analyzer interface {
	// Run number, experiment name, trace
	Analyze(int, string, *qtrain.Trace)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(_ int, _ []string, _ []DataSet) {}
}

// RewardAnalyzer computes the moving average of the per-step reward over
// the given window. The resulting dataset is a []float64 with one point per
// training step.
type RewardAnalyzer struct {
	window int
	series []float64
}

var _ Analyzer = &RewardAnalyzer{}

func NewRewardAnalyzer(window int) *RewardAnalyzer {
	return &RewardAnalyzer{
		window: window,
		series: make([]float64, 0),
	}
}

func (r *RewardAnalyzer) Analyze(_ int, _ string, trace *qtrain.Trace) {
	sum := float64(0)
	for i := 0; i < trace.Len(); i++ {
		_, _, _, reward, _ := trace.Get(i)
		sum += reward
		if i >= r.window {
			_, _, _, dropped, _ := trace.Get(i - r.window)
			sum -= dropped
			r.series = append(r.series, sum/float64(r.window))
		} else {
			r.series = append(r.series, sum/float64(i+1))
		}
	}
}

func (r *RewardAnalyzer) DataSet() DataSet {
	return r.series
}

func (r *RewardAnalyzer) Reset() {
	r.series = make([]float64, 0)
}

// CoverageAnalyzer counts the unique states visited over the training
// steps. The resulting dataset is a []int with one point per step.
type CoverageAnalyzer struct {
	uniqueStates    map[string]bool
	numUniqueStates []int
}

var _ Analyzer = &CoverageAnalyzer{}

func NewCoverageAnalyzer() *CoverageAnalyzer {
	return &CoverageAnalyzer{
		uniqueStates:    make(map[string]bool),
		numUniqueStates: make([]int, 0),
	}
}

func (c *CoverageAnalyzer) Analyze(_ int, _ string, trace *qtrain.Trace) {
	for i := 0; i < trace.Len(); i++ {
		state, _, nextState, _, _ := trace.Get(i)
		if _, ok := c.uniqueStates[state]; !ok {
			c.uniqueStates[state] = true
		}
		if _, ok := c.uniqueStates[nextState]; !ok {
			c.uniqueStates[nextState] = true
		}
		c.numUniqueStates = append(c.numUniqueStates, len(c.uniqueStates))
	}
}

func (c *CoverageAnalyzer) DataSet() DataSet {
	return c.numUniqueStates
}

func (c *CoverageAnalyzer) Reset() {
	c.uniqueStates = make(map[string]bool)
	c.numUniqueStates = make([]int, 0)
}

// RewardSummaryComparator prints the mean and standard deviation of the
// reward series of each experiment.
func RewardSummaryComparator() Comparator {
	return func(run int, names []string, ds []DataSet) {
		for i := 0; i < len(names); i++ {
			series := ds[i].([]float64)
			mean, std := stat.MeanStdDev(series, nil)
			fmt.Printf("For run: %d, experiment: %s, mean reward: %f, std: %f\n", run, names[i], mean, std)
		}
	}
}

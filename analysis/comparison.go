package analysis

import (
	"fmt"

	"github.com/zeu5/qtrain"
	"github.com/zeu5/qtrain/mdp"
	"github.com/zeu5/qtrain/strategy"
)

// Experiment names one training configuration to compare. The factories
// return fresh instances so that repeated runs do not share strategy state
// or agent positions.
type Experiment struct {
	Name       string
	NewAgent   func() mdp.Agent
	Learner    func() strategy.Learner
	Terminator func() strategy.Terminator
	Explorer   func() strategy.Explorer
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	// Runs is the number of independent repetitions
	Runs int
}

// Comparison trains each experiment from scratch, records its trace, and
// feeds the analyzed datasets to the registered comparators.
type Comparison struct {
	config      *ComparisonConfig
	experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
}

func NewComparison(config *ComparisonConfig) *Comparison {
	return &Comparison{
		config:      config,
		experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// AddExperiment adds an experiment to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.experiments = append(c.experiments, e)
}

// Run the comparison
func (c *Comparison) Run() {
	for run := 0; run < c.config.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.experiments))
		}

		names := make([]string, len(c.experiments))
		for i, e := range c.experiments {
			trainer := qtrain.NewTrainer()
			recorder := qtrain.NewTraceRecorder()
			trainer.AddObserver(recorder)
			trainer.Train(e.NewAgent(), e.Learner(), e.Terminator(), e.Explorer())

			for name, a := range c.analyzers {
				a.Analyze(run, e.Name, recorder.Trace())
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
}

package analysis

import (
	"math"
	"testing"

	"github.com/zeu5/qtrain"
)

func TestRewardAnalyzerWindowedAverage(t *testing.T) {
	trace := qtrain.NewTrace()
	rewards := []float64{1, 2, 3, 4}
	for _, r := range rewards {
		trace.Append("s", "a", "s", r)
	}

	a := NewRewardAnalyzer(2)
	a.Analyze(0, "test", trace)
	series := a.DataSet().([]float64)

	want := []float64{1, 1.5, 2.5, 3.5}
	if len(series) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(series))
	}
	for i := range want {
		if math.Abs(series[i]-want[i]) > 1e-12 {
			t.Errorf("point %d: expected %f, got %f", i, want[i], series[i])
		}
	}
}

func TestCoverageAnalyzerCountsUniqueStates(t *testing.T) {
	trace := qtrain.NewTrace()
	trace.Append("s0", "a", "s1", 0)
	trace.Append("s1", "a", "s0", 0)
	trace.Append("s0", "a", "s2", 0)

	c := NewCoverageAnalyzer()
	c.Analyze(0, "test", trace)
	counts := c.DataSet().([]int)

	want := []int{2, 2, 3}
	if len(counts) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(counts))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("point %d: expected %d unique states, got %d", i, want[i], counts[i])
		}
	}
}

func TestAnalyzerReset(t *testing.T) {
	trace := qtrain.NewTrace()
	trace.Append("s0", "a", "s1", 1)

	r := NewRewardAnalyzer(10)
	r.Analyze(0, "test", trace)
	r.Reset()
	if got := len(r.DataSet().([]float64)); got != 0 {
		t.Errorf("expected an empty dataset after reset, got %d points", got)
	}

	c := NewCoverageAnalyzer()
	c.Analyze(0, "test", trace)
	c.Reset()
	if got := len(c.DataSet().([]int)); got != 0 {
		t.Errorf("expected an empty dataset after reset, got %d points", got)
	}
}

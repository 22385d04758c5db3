package analysis

import (
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RewardPlotter draws the moving-average reward series of each experiment
// as a line chart under plotPath, one image per run.
func RewardPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Reward"
		p.X.Label.Text = "Step"
		p.Y.Label.Text = "Average reward"
		for i := 0; i < len(names); i++ {
			series := ds[i].([]float64)
			points := make(plotter.XYs, len(series))
			for j, v := range series {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_reward.png"))
	}
}

// CoveragePlotter draws the number of unique states visited by each
// experiment as a line chart under plotPath, one image per run.
func CoveragePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Coverage"
		p.X.Label.Text = "Step"
		p.Y.Label.Text = "States covered"
		for i := 0; i < len(names); i++ {
			uniqueStates := ds[i].([]int)
			points := make(plotter.XYs, len(uniqueStates))
			for j, v := range uniqueStates {
				points[j] = plotter.XY{
					X: float64(j),
					Y: float64(v),
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_coverage.png"))
	}
}

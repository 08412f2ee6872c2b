package report

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/axelmagn/simple-nbclf/pkg/core"
	"github.com/axelmagn/simple-nbclf/pkg/stats"
)

// barGroupWidth is the horizontal space shared by the bars of one record.
const barGroupWidth = 24

// PlotPosteriors renders P (records x classes) as a grouped bar chart, one
// group per record and one bar per class, and marks the winning class of each
// record with a cross. The image format follows the file extension of path.
// NaN posteriors are drawn as zero-height bars.
func PlotPosteriors(P *core.Matrix[float64], classNames []string, path string) error {
	if P.R == 0 || P.C == 0 {
		return errors.New("report: nothing to plot")
	}
	if classNames == nil {
		classNames = DefaultClassNames(P.C)
	}
	if len(classNames) != P.C {
		return errors.Errorf("report: %d class names for %d classes", len(classNames), P.C)
	}

	p := plot.New()
	p.Title.Text = "Posterior probability per record"
	p.X.Label.Text = "Record"
	p.Y.Label.Text = "P(class | record)"
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = true

	w := vg.Points(barGroupWidth / float64(P.C))
	for j := 0; j < P.C; j++ {
		vals := make(plotter.Values, P.R)
		for i := range vals {
			if v := P.At(i, j); !math.IsNaN(v) {
				vals[i] = v
			}
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return errors.Wrap(err, "report")
		}
		bars.Color = plotutil.Color(j)
		bars.LineStyle = draw.LineStyle{Color: color.Black, Width: vg.Points(0.25)}
		bars.Offset = w * vg.Length(float64(j)-float64(P.C-1)/2)
		p.Add(bars)
		p.Legend.Add(classNames[j], bars)
	}

	winners := make(plotter.XYs, 0, P.R)
	for i := 0; i < P.R; i++ {
		row := P.RawRow(i)
		if best := stats.ArgMax(row); best >= 0 {
			winners = append(winners, plotter.XY{X: float64(i), Y: row[best]})
		}
	}
	if len(winners) > 0 {
		s, err := plotter.NewScatter(winners)
		if err != nil {
			return errors.Wrap(err, "report")
		}
		s.Shape = draw.CrossGlyph{}
		s.Radius = vg.Points(4)
		p.Add(s)
	}

	labels := make([]string, P.R)
	for i := range labels {
		labels[i] = fmt.Sprint(i)
	}
	p.NominalX(labels...)

	width := vg.Length(P.R)*vg.Points(barGroupWidth+8) + 2*vg.Inch
	if err := p.Save(width, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "report")
	}
	return nil
}

// DefaultClassNames names classes by index.
func DefaultClassNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("class %d", i)
	}
	return names
}

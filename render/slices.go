/*package render draws pictures of interpolated surfaces with pyplot.

Plotting calls only queue up matplotlib commands. Nothing is drawn until the
caller runs plt.Execute().
*/
package render

import (
	"fmt"

	"github.com/phil-mansfield/gosurface/io"
	"github.com/phil-mansfield/gosurface/math/interpolate"
	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/floats"
)

var (
	colors = []string{
		"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
		"DarkViolet", "DeepPink", "DimGray",
	}
)

// Slices holds constant-y cuts through a surface: Vals[k][i] is the surface
// evaluated at (Xs[i], Ys[k]).
type Slices struct {
	Xs, Ys []float64
	Vals   [][]float64
}

// SampleSlices cuts bi at con.Slices evenly spaced values of y spanning the
// grid and samples each cut at con.Samples points. The sampled x range is the
// grid's x range widened by con.Extend times its width on both sides, so the
// extrapolated parts of the surface show up too.
func SampleSlices(bi *interpolate.BiLinear, con *io.PlotConfig) *Slices {
	s := &Slices{}

	if con.Slices == 1 {
		s.Ys = []float64{(bi.YMin() + bi.YMax()) / 2}
	} else {
		s.Ys = floats.Span(make([]float64, con.Slices), bi.YMin(), bi.YMax())
	}

	width := bi.XMax() - bi.XMin()
	s.Xs = floats.Span(
		make([]float64, con.Samples),
		bi.XMin()-con.Extend*width, bi.XMax()+con.Extend*width,
	)

	s.Vals = make([][]float64, len(s.Ys))
	for k, y := range s.Ys {
		s.Vals[k] = bi.SliceY(y).EvalAll(s.Xs)
	}

	return s
}

// PlotSlices queues up a figure showing con.Slices cuts through bi, with the
// x knots of each cut marked, and saves it to con.Output.
func PlotSlices(bi *interpolate.BiLinear, xs []float64, con *io.PlotConfig) {
	s := SampleSlices(bi, con)

	plt.Figure()
	for k, y := range s.Ys {
		c := colors[k%len(colors)]
		plt.Plot(s.Xs, s.Vals[k], plt.LW(2), plt.C(c))
		plt.Plot(xs, bi.EvalAllY(xs, y), "o", plt.C(c))
	}

	plt.Title(fmt.Sprintf(
		`%d slices over $y \in [%.3g, %.3g]$`,
		len(s.Ys), bi.YMin(), bi.YMax(),
	))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x,\,y)$`, plt.FontSize(16))

	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(con.Output)
}

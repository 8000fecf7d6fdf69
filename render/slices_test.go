package render

import (
	"testing"

	"github.com/phil-mansfield/gosurface/io"
	"github.com/phil-mansfield/gosurface/math/interpolate"
	"github.com/stretchr/testify/assert"
)

func TestSampleSlices(t *testing.T) {
	bi := interpolate.NewBiLinear(
		interpolate.Knots{0, 2, 5}, interpolate.Knots{0, 3},
		interpolate.Table{{10, 20, 30}, {40, 50, 60}},
	)
	con := &io.PlotConfig{Slices: 4, Samples: 11, Extend: 0.2}

	s := SampleSlices(bi, con)
	assert.Equal(t, []float64{0, 1, 2, 3}, s.Ys)
	assert.Len(t, s.Xs, 11)
	assert.InDelta(t, -1.0, s.Xs[0], 1e-12)
	assert.InDelta(t, 6.0, s.Xs[10], 1e-12)

	assert.Len(t, s.Vals, 4)
	for k, y := range s.Ys {
		assert.Len(t, s.Vals[k], 11)
		for i, x := range s.Xs {
			assert.InDelta(t, bi.Eval(x, y), s.Vals[k][i], 1e-9)
		}
	}
}

func TestSampleSingleSlice(t *testing.T) {
	bi := interpolate.NewBiLinear(
		interpolate.Knots{0, 1}, interpolate.Knots{0, 1},
		interpolate.Table{{0, 1}, {2, 3}},
	)
	s := SampleSlices(bi, &io.PlotConfig{Slices: 1, Samples: 3})

	assert.Equal(t, []float64{0.5}, s.Ys)
	assert.Equal(t, []float64{0, 0.5, 1}, s.Xs)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2}, s.Vals[0], 1e-12)
}

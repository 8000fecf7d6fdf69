package interpolate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	xs := Knots{0, 1, 1.5, 4, 10}
	table := []struct {
		q   float64
		idx int
	}{
		{-100, 0},
		{-1e-9, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{1.2, 1},
		{1.5, 2},
		{3.999, 2},
		{4, 3},
		{9.999, 3},
		{10, 3},
		{10.001, 3},
		{1e10, 3},
	}

	for _, test := range table {
		assert.Equal(t, test.idx, Locate(xs, test.q), "q = %g", test.q)
	}
}

func TestLocateTwoKnots(t *testing.T) {
	xs := Knots{-1, 1}
	for _, q := range []float64{-5, -1, 0, 1, 5} {
		assert.Equal(t, 0, Locate(xs, q), "q = %g", q)
	}
}

func TestLocateUniform(t *testing.T) {
	u := Uniform{X0: -2, Dx: 0.25, N: 17}
	k := Knots(u.Points())

	assert.Equal(t, 0, Locate(u, -3))
	assert.Equal(t, 15, Locate(u, 3))
	assert.Equal(t, 15, Locate(u, 2))
	assert.Equal(t, 4, Locate(u, -1))

	gen := rand.New(rand.NewSource(1))
	for n := 0; n < 1000; n++ {
		q := gen.Float64()*6 - 3
		i := Locate(u, q)
		assert.Equal(t, Locate(k, q), i, "q = %g", q)
		if q >= u.At(0) && q < u.At(u.N-1) {
			assert.True(t, u.At(i) <= q && q < u.At(i+1), "q = %g, i = %d", q, i)
		}
	}
}

func TestLocateBracketsNonUniform(t *testing.T) {
	// Strongly clustered knots defeat the uniform guess.
	xs := make(Knots, 50)
	for i := range xs {
		xs[i] = float64(i*i*i) / 1000
	}

	gen := rand.New(rand.NewSource(2))
	for n := 0; n < 1000; n++ {
		q := gen.Float64() * xs[len(xs)-1]
		i := Locate(xs, q)
		assert.True(t, i >= 0 && i <= len(xs)-2)
		assert.True(t, xs[i] <= q && q < xs[i+1], "q = %g, i = %d", q, i)
	}
}

func TestUniformPoints(t *testing.T) {
	u := Uniform{X0: 1, Dx: 0.5, N: 5}
	assert.Equal(t, 5, u.Len())
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, u.Points())

	buf := make([]float64, 5)
	out := u.Points(buf)
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, buf)
	assert.Equal(t, buf, out)
}

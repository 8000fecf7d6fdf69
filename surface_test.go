package gosurface

import (
	"errors"
	"io/ioutil"
	"math/rand"
	"os"
	"path"
	"testing"

	"github.com/phil-mansfield/gosurface/io"
	"github.com/phil-mansfield/gosurface/mat"
	"github.com/phil-mansfield/gosurface/math/interpolate"
	"github.com/stretchr/testify/assert"
)

func testSurface() *Surface {
	return NewSurface(
		[]float64{0, 2, 5}, []float64{0, 3},
		mat.NewMatrix([]float64{10, 20, 30, 40, 50, 60}, 3, 2),
	)
}

func TestSurfaceEval(t *testing.T) {
	s := testSurface()
	assert.Equal(t, 50.0, s.Eval(2, 3))
	assert.Equal(t, 30.0, s.Eval(1, 1.5))
	assert.Equal(t, 10.0, s.Eval(0, 0))
}

func TestEvalParallel(t *testing.T) {
	s := testSurface()
	gen := rand.New(rand.NewSource(9))
	xs, ys := make([]float64, 1003), make([]float64, 1003)
	for i := range xs {
		xs[i], ys[i] = gen.Float64()*7-1, gen.Float64()*5-1
	}
	exp := s.Interp.EvalAll(xs, ys)

	for _, workers := range []int{-1, 0, 1, 2, 3, 7, 64, 5000} {
		assert.Equal(t, exp, s.EvalParallel(xs, ys, workers),
			"workers = %d", workers)
	}

	buf := make([]float64, len(xs))
	out := s.EvalParallel(xs, ys, 4, buf)
	assert.Equal(t, exp, buf)
	assert.Equal(t, buf, out)

	assert.Equal(t, []float64{}, s.EvalParallel([]float64{}, []float64{}, 4))
}

func TestResample(t *testing.T) {
	s := testSurface()
	xs := []float64{-1, 0, 1, 2, 3.5, 5, 6}
	ys := []float64{0, 1, 2, 3}
	r := s.Resample(xs, ys)

	assert.Equal(t, 7, r.Grid.Width)
	assert.Equal(t, 4, r.Grid.Height)
	for j, y := range ys {
		for i, x := range xs {
			assert.Equal(t, s.Eval(x, y), r.Grid.At(j, i))
		}
	}

	// Every knot of s is also a knot of r, so r reproduces s.
	for _, x := range []float64{-0.5, 0.3, 1.7} {
		for _, y := range []float64{0.2, 1.5, 2.9} {
			assert.InDelta(t, s.Eval(x, y), r.Eval(x, y), 1e-10)
		}
	}
}

func TestReadSurface(t *testing.T) {
	dir, err := ioutil.TempDir("", "gosurface")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer os.RemoveAll(dir)

	con := &io.SurfaceConfig{
		XFile:    path.Join(dir, "x.txt"),
		YFile:    path.Join(dir, "y.txt"),
		GridFile: path.Join(dir, "grid.txt"),
		Validate: true,
	}
	s := testSurface()
	assert.NoError(t, io.WriteAxis(con.XFile, s.Xs))
	assert.NoError(t, io.WriteAxis(con.YFile, s.Ys))
	assert.NoError(t, io.WriteGrid(con.GridFile, s.Grid))

	read, err := ReadSurface(con)
	assert.NoError(t, err)
	assert.Equal(t, s.Xs, read.Xs)
	assert.Equal(t, s.Ys, read.Ys)
	assert.Equal(t, s.Grid.Vals, read.Grid.Vals)
	assert.Equal(t, 30.0, read.Eval(1, 1.5))

	// Unsorted axes are only caught when validation is on.
	assert.NoError(t, io.WriteAxis(con.XFile, []float64{0, 5, 2}))
	_, err = ReadSurface(con)
	assert.True(t, errors.Is(err, interpolate.ErrUnsorted))

	con.Validate = false
	_, err = ReadSurface(con)
	assert.NoError(t, err)
}

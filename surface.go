/*package gosurface evaluates functions of two variables which have been
tabulated on rectangular, non-uniform grids.

The interpolation itself lives in gosurface/math/interpolate. This package
ties it to the file formats in gosurface/io and adds batch evaluation across
multiple goroutines.
*/
package gosurface

import (
	"runtime"
	"sync"

	"github.com/phil-mansfield/gosurface/io"
	"github.com/phil-mansfield/gosurface/mat"
	"github.com/phil-mansfield/gosurface/math/interpolate"
)

var (
	_ interpolate.Grid  = &mat.Matrix{}
	_ interpolate.Sized = &mat.Matrix{}
)

// Surface is a tabulated function together with the interpolator built on
// top of it. Grid.At(j, i) is the value at (Xs[i], Ys[j]).
//
// The fields must not be modified after NewSurface.
type Surface struct {
	Xs, Ys interpolate.Knots
	Grid   *mat.Matrix
	Interp *interpolate.BiLinear
}

// NewSurface creates a Surface from existing tables. Nothing is copied or
// checked.
func NewSurface(xs, ys []float64, grid *mat.Matrix) *Surface {
	s := &Surface{Xs: xs, Ys: ys, Grid: grid}
	s.Interp = interpolate.NewBiLinear(s.Xs, s.Ys, s.Grid)
	return s
}

// ReadSurface reads the surface described by con and, if con.Validate is set,
// checks that its axes and grid are consistent.
func ReadSurface(con *io.SurfaceConfig) (*Surface, error) {
	xs, ys, grid, err := io.ReadSurface(con)
	if err != nil {
		return nil, err
	}

	if con.Validate {
		err = interpolate.Check(interpolate.Knots(xs), interpolate.Knots(ys), grid)
		if err != nil {
			return nil, err
		}
	}

	return NewSurface(xs, ys, grid), nil
}

// Eval evaluates the surface at (x, y).
func (s *Surface) Eval(x, y float64) float64 {
	return s.Interp.Eval(x, y)
}

// EvalParallel evaluates the surface at the points (xs[i], ys[i]) using the
// given number of goroutines. If workers <= 0, one goroutine is used per CPU.
// Output is written to out, if supplied.
//
// If more than one output array is provided, only the first is used.
func (s *Surface) EvalParallel(
	xs, ys []float64, workers int, out ...[]float64,
) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(xs) {
		workers = len(xs)
	}
	if workers <= 1 {
		return s.Interp.EvalAll(xs, ys, out[0])
	}

	wg := &sync.WaitGroup{}
	chunk := (len(xs) + workers - 1) / workers
	for start := 0; start < len(xs); start += chunk {
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}

		wg.Add(1)
		go func(start, end int) {
			s.Interp.EvalAll(xs[start:end], ys[start:end], out[0][start:end])
			wg.Done()
		}(start, end)
	}
	wg.Wait()

	return out[0]
}

// Resample evaluates s on the grid spanned by xs and ys and returns the
// result as a new Surface.
func (s *Surface) Resample(xs, ys []float64) *Surface {
	// A freshly allocated Dense is contiguous, so its backing array is
	// already in Matrix layout.
	raw := s.Interp.EvalGrid(xs, ys).RawMatrix()
	return NewSurface(xs, ys, mat.NewMatrix(raw.Data, raw.Cols, raw.Rows))
}

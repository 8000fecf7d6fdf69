package interpolate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrOutOfRange is wrapped by the errors returned from EvalStrict.
var ErrOutOfRange = errors.New("point outside of interpolation range")

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	xs   Axis
	vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing axis, xs,
// whose knots take on the values given by vals. Neither xs nor vals is
// copied.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the data
// layout.
func NewLinear(xs Axis, vals []float64) *Linear {
	if xs.Len() != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d.", len(vals), xs.Len(),
		))
	}
	return &Linear{xs: xs, vals: vals}
}

// NewUniformLinear creates a linear interplator where a uniformly spaced
// sequence of x values starting at x0 and separated by dx and whose values are
// given by vals.
//
// Lookups will be O(1).
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	return &Linear{xs: Uniform{x0, dx, len(vals)}, vals: vals}
}

// Eval returns the interpolated value at x. Points outside the table are
// extrapolated from the nearest edge segment.
func (lin *Linear) Eval(x float64) float64 {
	i1 := Locate(lin.xs, x)
	i2 := i1 + 1
	x1, x2 := lin.xs.At(i1), lin.xs.At(i2)
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2-v1)/(x2-x1))*(x-x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator over a rectangular grid with
// (possibly) non-uniformly spaced knots.
//
// A BiLinear holds references to the axes and grid it was created with and
// never copies or modifies them. They must outlive the BiLinear and must not
// be modified while it is in use.
type BiLinear struct {
	xs, ys Axis
	grid   Grid
}

// NewBiLinear creates a bi-linear interpolator for the grid of values vals,
// where vals.At(j, i) is the value at (xs.At(i), ys.At(j)).
//
// The x and y values must be sorted in strictly increasing order, each axis
// needs at least two knots, and the grid must have exactly ys.Len() rows and
// xs.Len() columns. None of this is checked. Use Check or NewCheckedBiLinear
// if the inputs are untrusted.
func NewBiLinear(xs, ys Axis, vals Grid) *BiLinear {
	return &BiLinear{xs: xs, ys: ys, grid: vals}
}

// NewUniformBiLinear creates a bi-linear interpolator whose knots are
// uniformly spaced along both axes. Lookups will be O(1).
func NewUniformBiLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals Grid,
) *BiLinear {
	return NewBiLinear(Uniform{x0, dx, nx}, Uniform{y0, dy, ny}, vals)
}

// NewCheckedBiLinear is NewBiLinear, but first runs Check on its arguments.
func NewCheckedBiLinear(xs, ys Axis, vals Grid) (*BiLinear, error) {
	if err := Check(xs, ys, vals); err != nil {
		return nil, err
	}
	return NewBiLinear(xs, ys, vals), nil
}

// Eval returns the interpolated value at (x, y). Points outside the grid are
// extrapolated linearly along each axis from the nearest edge cell.
func (bi *BiLinear) Eval(x, y float64) float64 {
	ix := Locate(bi.xs, x)
	iy := Locate(bi.ys, y)

	x1, x2 := bi.xs.At(ix), bi.xs.At(ix+1)
	y1, y2 := bi.ys.At(iy), bi.ys.At(iy+1)

	z1, z2 := bi.grid.At(iy, ix), bi.grid.At(iy, ix+1)
	z3, z4 := bi.grid.At(iy+1, ix), bi.grid.At(iy+1, ix+1)

	// Cell-local coordinates. These leave [0, 1] when extrapolating.
	t := (x - x1) / (x2 - x1)
	u := (y - y1) / (y2 - y1)

	return (1-t)*(1-u)*z1 + t*(1-u)*z2 + (1-t)*u*z3 + t*u*z4
}

// EvalStrict is Eval, except that it returns an error wrapping
// ErrOutOfRange instead of extrapolating.
func (bi *BiLinear) EvalStrict(x, y float64) (float64, error) {
	if !bi.InRange(x, y) {
		return 0, fmt.Errorf(
			"(%g, %g) is not in [%g, %g] x [%g, %g]: %w",
			x, y, bi.XMin(), bi.XMax(), bi.YMin(), bi.YMax(), ErrOutOfRange,
		)
	}
	return bi.Eval(x, y), nil
}

func (bi *BiLinear) XMin() float64 { return bi.xs.At(0) }
func (bi *BiLinear) XMax() float64 { return bi.xs.At(bi.xs.Len() - 1) }
func (bi *BiLinear) YMin() float64 { return bi.ys.At(0) }
func (bi *BiLinear) YMax() float64 { return bi.ys.At(bi.ys.Len() - 1) }

// InRange returns true if (x, y) lies in the closed rectangle covered by the
// grid.
func (bi *BiLinear) InRange(x, y float64) bool {
	return x >= bi.XMin() && x <= bi.XMax() &&
		y >= bi.YMin() && y <= bi.YMax()
}

// EvalAll evaluates the interpolator at the points (xs[i], ys[i]).
//
// If more than one output array is provided, only the first is used.
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d.", len(xs), len(ys),
		))
	}
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}

func (bi *BiLinear) EvalAllX(x float64, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ys))}
	}
	for i, y := range ys {
		out[0][i] = bi.Eval(x, y)
	}
	return out[0]
}

func (bi *BiLinear) EvalAllY(xs []float64, y float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = bi.Eval(x, y)
	}
	return out[0]
}

// EvalGrid evaluates the interpolator at every point of the grid spanned by
// xs and ys and writes the result to out, if supplied. Element (j, i) of the
// result is the value at (xs[i], ys[j]). Neither xs nor ys may be empty.
//
// If more than one output matrix is provided, only the first is used.
func (bi *BiLinear) EvalGrid(xs, ys []float64, out ...*mat.Dense) *mat.Dense {
	if len(out) == 0 {
		out = []*mat.Dense{mat.NewDense(len(ys), len(xs), nil)}
	}
	if rows, cols := out[0].Dims(); rows != len(ys) || cols != len(xs) {
		panic(fmt.Sprintf(
			"out is %d x %d, but len(ys) = %d and len(xs) = %d.",
			rows, cols, len(ys), len(xs),
		))
	}

	for j, y := range ys {
		for i, x := range xs {
			out[0].Set(j, i, bi.Eval(x, y))
		}
	}
	return out[0]
}

// SliceY returns the 1D interpolator f(x) = bi.Eval(x, y). The result agrees
// with Eval everywhere, including outside the grid, since the blend is
// linear in x within each cell.
func (bi *BiLinear) SliceY(y float64) *Linear {
	vals := make([]float64, bi.xs.Len())
	for i := range vals {
		vals[i] = bi.Eval(bi.xs.At(i), y)
	}
	return NewLinear(bi.xs, vals)
}

// SliceX returns the 1D interpolator f(y) = bi.Eval(x, y).
func (bi *BiLinear) SliceX(x float64) *Linear {
	vals := make([]float64, bi.ys.Len())
	for j := range vals {
		vals[j] = bi.Eval(x, bi.ys.At(j))
	}
	return NewLinear(bi.ys, vals)
}

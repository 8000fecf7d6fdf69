/*package interpolate implements linear interpolators over tabulated data in
one and two dimensions.

None of the interpolators cache anything between calls, so a single
interpolator may be shared by any number of goroutines as long as nobody
modifies the tables it was built from.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequeunce of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
)

// BiInterpolator is a 2D interpolator.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequeunce of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64

	// EvalAllX evaluates the points (x, ys[i]).
	EvalAllX(x float64, ys []float64, out ...[]float64) []float64
	// EvalAllY evaluates the points (xs[i], y).
	EvalAllY(xs []float64, y float64, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &BiLinear{}
)

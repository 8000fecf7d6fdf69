package interpolate

import (
	"gonum.org/v1/gonum/floats"
)

// Axis is a strictly increasing sequence of knots along one dimension of a
// table. Nothing in this package checks that an Axis is sorted except Check.
type Axis interface {
	Len() int
	At(i int) float64
}

var (
	_ Axis = Knots{}
	_ Axis = Uniform{}
)

// Knots is an Axis backed by a slice. The slice is not copied, so it must not
// be modified while anything built on top of it is in use.
type Knots []float64

func (k Knots) Len() int { return len(k) }
func (k Knots) At(i int) float64 { return k[i] }

// Uniform is an Axis of N knots starting at X0 and separated by Dx.
type Uniform struct {
	X0, Dx float64
	N      int
}

func (u Uniform) Len() int { return u.N }
func (u Uniform) At(i int) float64 { return u.X0 + float64(i)*u.Dx }

// Points writes the knots of u to out, if supplied, and returns them.
//
// If more than one output array is provided, only the first is used.
func (u Uniform) Points(out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, u.N)}
	}
	return floats.Span(out[0][:u.N], u.X0, u.At(u.N-1))
}

// Locate returns the index of the lower knot of the cell of ax used to
// interpolate at q. The result is always in [0, ax.Len() - 2]:
//
//	q < ax[0]            -> 0
//	ax[0] <= q < ax[L-1] -> the largest k with ax[k] <= q
//	q >= ax[L-1]         -> L - 2
//
// Points outside the axis are mapped to the nearest edge cell so that the
// caller extrapolates linearly instead of failing.
//
// Lookups are O(log L) and O(1) if the knots are evenly spaced.
func Locate(ax Axis, q float64) int {
	n := ax.Len()
	lo, hi := ax.At(0), ax.At(n-1)
	if !(q > lo) {
		return 0
	} else if q >= hi {
		return n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((q - lo) / (hi - lo) * float64(n-1))
	if guess >= 0 && guess < n-1 && ax.At(guess) <= q && q < ax.At(guess+1) {
		return guess
	}

	// Binary search. ax[i] <= q < ax[j] throughout.
	i, j := 0, n-1
	for j-i > 1 {
		mid := (i + j) / 2
		if q >= ax.At(mid) {
			i = mid
		} else {
			j = mid
		}
	}
	return i
}

package interpolate

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrShortAxis = errors.New("axis has fewer than two knots")
	ErrNonFinite = errors.New("axis has a non-finite knot")
	ErrUnsorted  = errors.New("axis is not strictly increasing")
	ErrShape     = errors.New("grid shape does not match axes")
)

// Check verifies the preconditions of NewBiLinear: both axes have at least
// two finite, strictly increasing knots, and, if vals is Sized, the grid has
// ys.Len() rows and xs.Len() columns. The returned error wraps one of
// ErrShortAxis, ErrNonFinite, ErrUnsorted, or ErrShape.
//
// Check is O(|xs| + |ys|) and is never called by Eval.
func Check(xs, ys Axis, vals Grid) error {
	if err := checkAxis("x", xs); err != nil {
		return err
	}
	if err := checkAxis("y", ys); err != nil {
		return err
	}

	if tab, ok := vals.(Table); ok {
		if len(tab) != ys.Len() {
			return fmt.Errorf(
				"grid has %d rows, but len(ys) = %d: %w",
				len(tab), ys.Len(), ErrShape,
			)
		}
		for j := range tab {
			if len(tab[j]) != xs.Len() {
				return fmt.Errorf(
					"row %d of grid has length %d, but len(xs) = %d: %w",
					j, len(tab[j]), xs.Len(), ErrShape,
				)
			}
		}
	} else if sized, ok := vals.(Sized); ok {
		rows, cols := sized.Dims()
		if rows != ys.Len() || cols != xs.Len() {
			return fmt.Errorf(
				"grid is %d x %d, but len(ys) = %d and len(xs) = %d: %w",
				rows, cols, ys.Len(), xs.Len(), ErrShape,
			)
		}
	}

	return nil
}

func checkAxis(name string, ax Axis) error {
	n := ax.Len()
	if n < 2 {
		return fmt.Errorf("len(%ss) = %d: %w", name, n, ErrShortAxis)
	}

	for i := 0; i < n; i++ {
		v := ax.At(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%ss[%d] = %g: %w", name, i, v, ErrNonFinite)
		}
		if i > 0 && ax.At(i-1) >= v {
			return fmt.Errorf(
				"%ss[%d] = %g, but %ss[%d] = %g: %w",
				name, i-1, ax.At(i-1), name, i, v, ErrUnsorted,
			)
		}
	}
	return nil
}

package interpolate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestCheck(t *testing.T) {
	good := Table{{1, 2, 3}, {4, 5, 6}}
	table := []struct {
		name   string
		xs, ys Axis
		vals   Grid
		err    error
	}{
		{"valid", Knots{0, 1, 2}, Knots{0, 1}, good, nil},
		{"uniform", Uniform{0, 1, 3}, Uniform{0, 1, 2}, good, nil},
		{"dense", Knots{0, 1, 2}, Knots{0, 1},
			mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), nil},
		{"short x", Knots{0}, Knots{0, 1}, Table{{1}, {2}}, ErrShortAxis},
		{"short y", Knots{0, 1}, Knots{}, Table{}, ErrShortAxis},
		{"nan", Knots{0, math.NaN(), 2}, Knots{0, 1}, good, ErrNonFinite},
		{"inf", Knots{0, 1, 2}, Knots{0, math.Inf(1)}, good, ErrNonFinite},
		{"duplicate", Knots{0, 1, 1}, Knots{0, 1}, good, ErrUnsorted},
		{"decreasing", Knots{0, 1, 2}, Knots{1, 0}, good, ErrUnsorted},
		{"zero dx", Uniform{0, 0, 3}, Knots{0, 1}, good, ErrUnsorted},
		{"transposed", Knots{0, 1}, Knots{0, 1, 2}, good, ErrShape},
		{"ragged", Knots{0, 1, 2}, Knots{0, 1}, Table{{1, 2, 3}, {4, 5}}, ErrShape},
		{"dense shape", Knots{0, 1, 2}, Knots{0, 1},
			mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}), ErrShape},
	}

	for _, test := range table {
		err := Check(test.xs, test.ys, test.vals)
		if test.err == nil {
			assert.NoError(t, err, test.name)
		} else {
			assert.Error(t, err, test.name)
			assert.True(t, errors.Is(err, test.err),
				"%s: expected %v, got %v", test.name, test.err, err)
		}
	}
}

func TestNewCheckedBiLinear(t *testing.T) {
	bi, err := NewCheckedBiLinear(Knots{0, 1}, Knots{0, 1}, Table{{0, 1}, {2, 3}})
	assert.NoError(t, err)
	assert.Equal(t, 1.5, bi.Eval(0.5, 0.5))

	bi, err = NewCheckedBiLinear(Knots{1, 0}, Knots{0, 1}, Table{{0, 1}, {2, 3}})
	assert.Nil(t, bi)
	assert.True(t, errors.Is(err, ErrUnsorted))
}

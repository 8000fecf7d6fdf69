/*package mat contains a minimal row-major matrix type which is used to store
the tabulated values of a surface. A Matrix satisfies the Grid interface in
gosurface/math/interpolate, so it can be handed to an interpolator directly.

The values slice is never copied: a Matrix is a view onto memory owned by
whoever called NewMatrix.
*/
package mat

import (
	"fmt"
)

// Matrix represents a matrix of float64 values. Element (row, col) lives at
// Vals[row*Width + col].
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but width = %d and height = %d.",
			len(vals), width, height,
		))
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Zeros allocates a zeroed width x height matrix.
func Zeros(width, height int) *Matrix {
	return NewMatrix(make([]float64, width*height), width, height)
}

// At returns the element at the given row and column.
func (m *Matrix) At(row, col int) float64 {
	return m.Vals[row*m.Width+col]
}

// Set sets the element at the given row and column.
func (m *Matrix) Set(row, col int, v float64) {
	m.Vals[row*m.Width+col] = v
}

// Dims returns the number of rows and columns in the matrix.
func (m *Matrix) Dims() (rows, cols int) {
	return m.Height, m.Width
}

// Row returns the given row. The returned slice shares memory with m.
func (m *Matrix) Row(row int) []float64 {
	start := row * m.Width
	return m.Vals[start : start+m.Width]
}

// Col copies the given column into out, if supplied, and returns it.
//
// If more than one output array is provided, only the first is used.
func (m *Matrix) Col(col int, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, m.Height)}
	}
	for row := 0; row < m.Height; row++ {
		out[0][row] = m.Vals[row*m.Width+col]
	}
	return out[0]
}

// Transpose returns a newly allocated transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := Zeros(m.Height, m.Width)
	for row := 0; row < m.Height; row++ {
		off := row * m.Width
		for col := 0; col < m.Width; col++ {
			out.Vals[col*out.Width+row] = m.Vals[off+col]
		}
	}
	return out
}

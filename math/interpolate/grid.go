package interpolate

import (
	"gonum.org/v1/gonum/mat"
)

// Grid is a 2D table of values. At(j, i) is the value at (xs[i], ys[j]), so
// rows run along y and columns run along x.
type Grid interface {
	At(row, col int) float64
}

// Sized is implemented by Grids which know their own shape. Check uses it to
// compare the grid against its axes.
type Sized interface {
	Dims() (rows, cols int)
}

var (
	_ Grid  = Table{}
	_ Sized = Table{}
	_ Grid  = &mat.Dense{}
	_ Sized = &mat.Dense{}
)

// Table is a Grid backed by a slice of rows. Table[j][i] is the value at
// (xs[i], ys[j]).
type Table [][]float64

func (tab Table) At(row, col int) float64 { return tab[row][col] }

// Dims returns the number of rows and the length of the first row.
func (tab Table) Dims() (rows, cols int) {
	if len(tab) == 0 {
		return 0, 0
	}
	return len(tab), len(tab[0])
}

/*package io reads and writes the text files and configuration files used by
the gosurface command line tool.

All tables are whitespace-separated text. Axis files hold one knot per line,
grid files hold one row of the grid (fixed y) per line, and point files hold
one query point per line.
*/
package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/gosurface/mat"
	"github.com/phil-mansfield/table"
)

// Matrix is anything that can be written out as a grid file.
type Matrix interface {
	Dims() (rows, cols int)
	At(row, col int) float64
}

// ReadAxis reads the first column of the given file.
func ReadAxis(fname string) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{0}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// ReadGrid reads a table with width columns into a Matrix. Line j of the file
// becomes row j of the Matrix.
func ReadGrid(fname string, width int) (*mat.Matrix, error) {
	if width <= 0 {
		return nil, fmt.Errorf("Grid width of %d requested from '%s'.",
			width, fname)
	}

	colIdxs := make([]int, width)
	for i := range colIdxs {
		colIdxs[i] = i
	}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	height := len(cols[0])
	if height == 0 {
		return nil, fmt.Errorf("Grid file '%s' is empty.", fname)
	}

	vals := make([]float64, width*height)
	for i := range cols {
		if len(cols[i]) != height {
			return nil, fmt.Errorf(
				"Column %d of '%s' has %d rows, but column 0 has %d.",
				i, fname, len(cols[i]), height,
			)
		}
		for j, v := range cols[i] {
			vals[j*width+i] = v
		}
	}

	return mat.NewMatrix(vals, width, height), nil
}

// ReadSurface reads the axes and grid described by con. The returned grid has
// len(ys) rows and len(xs) columns regardless of con.Transposed.
func ReadSurface(
	con *SurfaceConfig,
) (xs, ys []float64, grid *mat.Matrix, err error) {
	if err = con.CheckInit(); err != nil {
		return nil, nil, nil, err
	}

	if xs, err = ReadAxis(con.XFile); err != nil {
		return nil, nil, nil, err
	}
	if ys, err = ReadAxis(con.YFile); err != nil {
		return nil, nil, nil, err
	}

	if con.Transposed {
		if grid, err = ReadGrid(con.GridFile, len(ys)); err != nil {
			return nil, nil, nil, err
		}
		grid = grid.Transpose()
	} else {
		if grid, err = ReadGrid(con.GridFile, len(xs)); err != nil {
			return nil, nil, nil, err
		}
	}

	if grid.Height != len(ys) || grid.Width != len(xs) {
		return nil, nil, nil, fmt.Errorf(
			"Grid in '%s' is %d x %d, but '%s' has %d knots and '%s' has %d.",
			con.GridFile, grid.Height, grid.Width,
			con.YFile, len(ys), con.XFile, len(xs),
		)
	}

	return xs, ys, grid, nil
}

// ReadPoints reads the query points described by con.
func ReadPoints(con *EvalConfig) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(
		con.PointsFile, []int{con.XColumn, con.YColumn}, nil,
	)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// create opens fname for writing. The empty string means stdout.
func create(fname string) (*os.File, error) {
	if fname == "" {
		return os.Stdout, nil
	}
	return os.Create(fname)
}

func finish(f *os.File, w *bufio.Writer) error {
	if err := w.Flush(); err != nil {
		return err
	}
	if f == os.Stdout {
		return nil
	}
	return f.Close()
}

// WriteAxis writes xs to fname, one value per line.
func WriteAxis(fname string, xs []float64) error {
	f, err := create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, x := range xs {
		fmt.Fprintf(w, "%g\n", x)
	}
	return finish(f, w)
}

// WriteGrid writes m to fname, one row per line, in the format read by
// ReadGrid.
func WriteGrid(fname string, m Matrix) error {
	f, err := create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	rows, cols := m.Dims()
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			if i > 0 {
				w.WriteByte(' ')
			}
			fmt.Fprintf(w, "%g", m.At(j, i))
		}
		w.WriteByte('\n')
	}
	return finish(f, w)
}

// WriteValues writes "x y value" lines to fname. The empty string means
// stdout.
func WriteValues(fname string, xs, ys, vals []float64) error {
	if len(xs) != len(ys) || len(xs) != len(vals) {
		return fmt.Errorf(
			"len(xs) = %d, len(ys) = %d, and len(vals) = %d.",
			len(xs), len(ys), len(vals),
		)
	}

	f, err := create(fname)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for i := range xs {
		fmt.Fprintf(w, "%g %g %g\n", xs[i], ys[i], vals[i])
	}
	return finish(f, w)
}

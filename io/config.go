package io

import (
	"fmt"
	"math"
)

const (
	ExampleSurfaceFile = `[Surface]

#######################
# Required Parameters #
#######################

# Text files containing the knots of the x and y axes, one value per line.
# Both must be strictly increasing and contain at least two values.
XFile = path/to/x.txt
YFile = path/to/y.txt

# Text file containing the tabulated values. Line j holds the values at
# (x_0, y_j), (x_1, y_j), ..., so the file has one line per y knot and one
# column per x knot.
GridFile = path/to/grid.txt

#######################
# Optional Parameters #
#######################

# Set to true if GridFile has one line per x knot and one column per y knot
# instead.
# Transposed = false

# Verify that the axes are sorted and that the grid matches them before doing
# anything else. Default is true. Turning this off does not make evaluation
# any faster.
# Validate = true`

	ExampleEvalFile = ExampleSurfaceFile + `

[Eval]

#######################
# Required Parameters #
#######################

# Text file containing the points to evaluate the surface at.
PointsFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Columns of PointsFile which hold the x and y coordinates. Defaults are 0
# and 1.
# XColumn = 0
# YColumn = 1

# File that "x y value" lines are written to. Default is stdout.
# Output = path/to/values.txt

# By default, points outside the grid are extrapolated from the nearest edge
# cell. Set Strict to fail on such points instead.
# Strict = false

# Number of goroutines used for evaluation. Default is one per CPU.
# Workers = 4

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleResampleFile = ExampleSurfaceFile + `

[Resample]

#######################
# Required Parameters #
#######################

# Number of knots along each axis of the resampled grid.
Nx = 100
Ny = 100

# Prefix of the output files. The resampled surface is written to
# <Output>_x.txt, <Output>_y.txt, and <Output>_grid.txt, which can be used
# as the XFile, YFile, and GridFile of another [Surface].
Output = path/to/resampled

#######################
# Optional Parameters #
#######################

# Range of the resampled grid. Defaults to the range of the input surface.
# Ranges which go outside the input surface are extrapolated.
# XMin = 0
# XMax = 1
# YMin = 0
# YMax = 1

# ProfileFile = prof.out
# LogFile = log.out`

	ExamplePlotFile = ExampleSurfaceFile + `

[Plot]

#######################
# Required Parameters #
#######################

# Image file that the plot is saved to.
Output = path/to/slices.png

#######################
# Optional Parameters #
#######################

# Number of constant-y slices to draw. They are evenly spaced over the y
# range of the surface. Default is 5.
# Slices = 5

# Number of points along each slice. Default is 200.
# Samples = 200

# Fraction of the x range drawn past each edge of the grid. Default is 0.1.
# Extend = 0.1

# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type SurfaceConfig struct {
	// Required
	XFile, YFile, GridFile string

	// Optional
	Transposed bool
	Validate   bool
}

func (con *SurfaceConfig) ValidXFile() bool {
	return con.XFile != ""
}
func (con *SurfaceConfig) ValidYFile() bool {
	return con.YFile != ""
}
func (con *SurfaceConfig) ValidGridFile() bool {
	return con.GridFile != ""
}

// CheckInit returns an error describing the first missing required
// parameter, if any.
func (con *SurfaceConfig) CheckInit() error {
	if !con.ValidXFile() {
		return fmt.Errorf("Invalid/non-existent 'XFile' value in [Surface].")
	} else if !con.ValidYFile() {
		return fmt.Errorf("Invalid/non-existent 'YFile' value in [Surface].")
	} else if !con.ValidGridFile() {
		return fmt.Errorf(
			"Invalid/non-existent 'GridFile' value in [Surface].",
		)
	}
	return nil
}

func defaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{Validate: true}
}

type EvalConfig struct {
	SharedConfig

	// Required
	PointsFile string

	// Optional
	XColumn, YColumn int
	Output           string
	Strict           bool
	Workers          int
}

type EvalWrapper struct {
	Surface SurfaceConfig
	Eval    EvalConfig
}

func DefaultEvalWrapper() *EvalWrapper {
	con := EvalConfig{}
	con.XColumn, con.YColumn = 0, 1
	return &EvalWrapper{defaultSurfaceConfig(), con}
}

func (con *EvalConfig) ValidPointsFile() bool {
	return con.PointsFile != ""
}
func (con *EvalConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *EvalConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *EvalConfig) ValidWorkers() bool {
	return con.Workers >= 0
}

type ResampleConfig struct {
	SharedConfig

	// Required
	Nx, Ny int
	Output string

	// Optional
	XMin, XMax, YMin, YMax float64
}

type ResampleWrapper struct {
	Surface  SurfaceConfig
	Resample ResampleConfig
}

// DefaultResampleWrapper returns a wrapper whose ranges are NaN, which marks
// them as unset.
func DefaultResampleWrapper() *ResampleWrapper {
	con := ResampleConfig{}
	con.XMin, con.XMax = math.NaN(), math.NaN()
	con.YMin, con.YMax = math.NaN(), math.NaN()
	return &ResampleWrapper{defaultSurfaceConfig(), con}
}

func (con *ResampleConfig) ValidNx() bool {
	return con.Nx >= 2
}
func (con *ResampleConfig) ValidNy() bool {
	return con.Ny >= 2
}
func (con *ResampleConfig) ValidOutput() bool {
	return con.Output != ""
}

// HasXRange returns true if both XMin and XMax were set.
func (con *ResampleConfig) HasXRange() bool {
	return !math.IsNaN(con.XMin) && !math.IsNaN(con.XMax)
}

// HasYRange returns true if both YMin and YMax were set.
func (con *ResampleConfig) HasYRange() bool {
	return !math.IsNaN(con.YMin) && !math.IsNaN(con.YMax)
}

// ValidXRange returns true if XMin and XMax are either both unset or form a
// non-empty range.
func (con *ResampleConfig) ValidXRange() bool {
	if math.IsNaN(con.XMin) && math.IsNaN(con.XMax) {
		return true
	}
	return con.HasXRange() && con.XMin < con.XMax
}

func (con *ResampleConfig) ValidYRange() bool {
	if math.IsNaN(con.YMin) && math.IsNaN(con.YMax) {
		return true
	}
	return con.HasYRange() && con.YMin < con.YMax
}

type PlotConfig struct {
	SharedConfig

	// Required
	Output string

	// Optional
	Slices, Samples int
	Extend          float64
}

type PlotWrapper struct {
	Surface SurfaceConfig
	Plot    PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{Slices: 5, Samples: 200, Extend: 0.1}
	return &PlotWrapper{defaultSurfaceConfig(), con}
}

func (con *PlotConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *PlotConfig) ValidSlices() bool {
	return con.Slices > 0
}
func (con *PlotConfig) ValidSamples() bool {
	return con.Samples >= 2
}
func (con *PlotConfig) ValidExtend() bool {
	return con.Extend >= 0
}

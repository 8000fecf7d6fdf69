package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gosurface"
	"github.com/phil-mansfield/gosurface/io"
	"github.com/phil-mansfield/gosurface/render"
	plt "github.com/phil-mansfield/pyplot"
)

type FileGroup struct {
	log, prof *os.File
}

// NewFileGroup opens the log and profiling files named in con, if any, and
// starts logging/profiling to them.
func NewFileGroup(con *io.SharedConfig) *FileGroup {
	fg := &FileGroup{}
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		eval, resample, plot string
		exampleConfig        string
	)
	vars := map[string]*string{
		"Eval":          &eval,
		"Resample":      &resample,
		"Plot":          &plot,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&eval, "Eval", "",
		"Configuration file for [Eval] mode.",
	)
	flag.StringVar(
		&resample, "Resample", "",
		"Configuration file for [Resample] mode.",
	)
	flag.StringVar(
		&plot, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Surface', "+
			"'Eval', 'Resample', and 'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Eval":
		wrap := io.DefaultEvalWrapper()
		err := gcfg.ReadFileInto(wrap, eval)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Eval

		if !con.ValidPointsFile() {
			log.Fatal("Invalid/non-existent 'PointsFile' value.")
		} else if !con.ValidColumns() {
			log.Fatal("'XColumn' and 'YColumn' must be distinct and " +
				"non-negative.")
		} else if !con.ValidWorkers() {
			log.Fatal("Invalid 'Workers' value.")
		}

		evalMain(&wrap.Surface, con)

	case "Resample":
		wrap := io.DefaultResampleWrapper()
		err := gcfg.ReadFileInto(wrap, resample)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Resample

		if !con.ValidNx() {
			log.Fatal("Invalid/non-existent 'Nx' value. Must be at least 2.")
		} else if !con.ValidNy() {
			log.Fatal("Invalid/non-existent 'Ny' value. Must be at least 2.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidXRange() {
			log.Fatal("You must set both 'XMin' and 'XMax' or neither, " +
				"and XMin must be smaller than XMax.")
		} else if !con.ValidYRange() {
			log.Fatal("You must set both 'YMin' and 'YMax' or neither, " +
				"and YMin must be smaller than YMax.")
		}

		resampleMain(&wrap.Surface, con)

	case "Plot":
		wrap := io.DefaultPlotWrapper()
		err := gcfg.ReadFileInto(wrap, plot)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Plot

		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidSlices() {
			log.Fatal("Invalid 'Slices' value.")
		} else if !con.ValidSamples() {
			log.Fatal("Invalid 'Samples' value. Must be at least 2.")
		} else if !con.ValidExtend() {
			log.Fatal("Invalid 'Extend' value. Must be non-negative.")
		}

		plotMain(&wrap.Surface, con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Surface":
			fmt.Println(io.ExampleSurfaceFile)
		case "Eval":
			fmt.Println(io.ExampleEvalFile)
		case "Resample":
			fmt.Println(io.ExampleResampleFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Surface', 'Eval', 'Resample', and 'Plot'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gosurface "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func readSurface(con *io.SurfaceConfig) *gosurface.Surface {
	s, err := gosurface.ReadSurface(con)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read %d x %d surface covering [%g, %g] x [%g, %g].",
		len(s.Xs), len(s.Ys),
		s.Interp.XMin(), s.Interp.XMax(), s.Interp.YMin(), s.Interp.YMax(),
	)
	return s
}

func evalMain(surf *io.SurfaceConfig, con *io.EvalConfig) {
	fg := NewFileGroup(&con.SharedConfig)
	defer fg.Close()

	s := readSurface(surf)

	xs, ys, err := io.ReadPoints(con)
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.Strict {
		for i := range xs {
			if _, err := s.Interp.EvalStrict(xs[i], ys[i]); err != nil {
				log.Fatalf("Point %d of '%s': %s", i, con.PointsFile, err)
			}
		}
	}

	t0 := time.Now()
	vals := s.EvalParallel(xs, ys, con.Workers)
	log.Printf("Evaluated %d points in %s.", len(xs), time.Since(t0))

	if err := io.WriteValues(con.Output, xs, ys, vals); err != nil {
		log.Fatal(err.Error())
	}
}

func resampleMain(surf *io.SurfaceConfig, con *io.ResampleConfig) {
	fg := NewFileGroup(&con.SharedConfig)
	defer fg.Close()

	s := readSurface(surf)

	xMin, xMax := s.Interp.XMin(), s.Interp.XMax()
	if con.HasXRange() {
		xMin, xMax = con.XMin, con.XMax
	}
	yMin, yMax := s.Interp.YMin(), s.Interp.YMax()
	if con.HasYRange() {
		yMin, yMax = con.YMin, con.YMax
	}

	xs := floats.Span(make([]float64, con.Nx), xMin, xMax)
	ys := floats.Span(make([]float64, con.Ny), yMin, yMax)
	r := s.Resample(xs, ys)

	files := []string{
		con.Output + "_x.txt", con.Output + "_y.txt", con.Output + "_grid.txt",
	}
	if err := io.WriteAxis(files[0], r.Xs); err != nil {
		log.Fatal(err.Error())
	}
	if err := io.WriteAxis(files[1], r.Ys); err != nil {
		log.Fatal(err.Error())
	}
	if err := io.WriteGrid(files[2], r.Grid); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", strings.Join(files, ", "))
}

func plotMain(surf *io.SurfaceConfig, con *io.PlotConfig) {
	fg := NewFileGroup(&con.SharedConfig)
	defer fg.Close()

	s := readSurface(surf)
	render.PlotSlices(s.Interp, s.Xs, con)
	plt.Execute()
}

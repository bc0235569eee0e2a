package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// stepRow mirrors the base columns of a steps_chart CSV. Extra columns such
// as efficiency are ignored.
type stepRow struct {
	Steps       int64   `csv:"steps"`
	TimePerTask float64 `csv:"time_per_task"`
}

func main() {
	var (
		inputDir   = flag.String("i", ".", "Path to the directory with steps_chart CSV files")
		output     = flag.String("o", "steps_chart.png", "Path for the output figure")
		debugLevel = flag.String("d", "info", "Debug level: info, debug")
	)
	flag.Parse()
	log.SetOutput(os.Stdout)

	switch *debugLevel {
	case "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
		log.Debug("Debug mode is enabled")
	}

	series := parseFiles(*inputDir)
	if len(series) == 0 {
		log.Fatal("No steps_chart CSV files found in ", *inputDir)
	}

	plotFig(*output, series)
}

func plotFig(output string, series map[string]plotter.XYs) {
	if dir := filepath.Dir(output); dir != "." {
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			log.Info("Creating the output directory")
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				log.Fatal(err)
			}
		}
	}

	p := plot.New()

	p.Title.Text = "Task granularity by time step count"
	p.X.Label.Text = "Time steps"
	p.Y.Label.Text = "Time per task (ms)"

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []interface{}
	for _, name := range names {
		lines = append(lines, name, series[name])
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		log.Fatal(err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		log.Fatal(err)
	}

	log.Info("Wrote ", output)
}

func parseFiles(inputDir string) map[string]plotter.XYs {
	files, err := os.ReadDir(inputDir)
	if err != nil {
		log.Fatal("Cannot open the input directory: ", err)
	}

	series := make(map[string]plotter.XYs)
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".csv") {
			continue
		}

		log.Debug("Open file ", file.Name())

		rows := readRows(filepath.Join(inputDir, file.Name()))
		if len(rows) == 0 {
			log.Warn("No data rows in ", file.Name())
			continue
		}

		name := strings.TrimSuffix(file.Name(), ".csv")
		series[name] = getXY(rows)
	}

	return series
}

func getXY(rows []stepRow) plotter.XYs {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Steps < rows[j].Steps
	})

	pts := make(plotter.XYs, len(rows))
	for i := range pts {
		pts[i].X = float64(rows[i].Steps)
		pts[i].Y = rows[i].TimePerTask
	}
	return pts
}

func readRows(path string) []stepRow {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var rows []stepRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Fatal("Cannot parse ", path, ": ", err)
	}

	return rows
}

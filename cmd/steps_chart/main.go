package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/dycz0fx/task-bench/pkg/config"
	"github.com/dycz0fx/task-bench/pkg/metric"
	"github.com/dycz0fx/task-bench/pkg/parser"
)

func main() {
	var (
		nodes     = flag.Int("nodes", 0, "Number of nodes the benchmark ran on")
		cores     = flag.Int("cores", 0, "Number of cores per node")
		threshold = flag.Float64("threshold", 0.5, "Reserved, accepted for compatibility with older drivers")
		peakFlops = flag.Float64("peak-compute-bandwidth", 0, "Peak compute bandwidth per node in DP FLOP/s")
		peakBytes = flag.Float64("peak-memory-bandwidth", 0, "Peak memory bandwidth per node in B/s")
		summary   = flag.String("summary", "", "Path for an optional per-file summary CSV")
		verbosity = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	)
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	cfg := config.RunConfig{
		Nodes:       *nodes,
		Cores:       *cores,
		Threshold:   *threshold,
		PeakFlops:   *peakFlops,
		PeakBytes:   *peakBytes,
		SummaryPath: *summary,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatal("No input files given.")
	}

	runID := uuid.New().String()
	log.Infof("Analysis run %s over %d file(s)", runID, len(inputs))

	var summaries []metric.SummaryRecord
	for _, input := range inputs {
		table, err := analyzeFile(input, &cfg)
		if err != nil {
			log.Fatal(err)
		}
		summaries = append(summaries, metric.Summarize(input, runID, table))
	}

	if cfg.SummaryPath != "" {
		if err := metric.WriteSummary(summaries, cfg.SummaryPath); err != nil {
			log.Fatal(err)
		}
		log.Infof("Wrote summary %s", cfg.SummaryPath)
	}
}

// analyzeFile runs one log through the whole pipeline and writes its CSV next
// to the input. Any failure rejects the file as a whole.
func analyzeFile(input string, cfg *config.RunConfig) (*metric.Table, error) {
	table, err := parser.ParseFile(input)
	if err != nil {
		return nil, err
	}
	if err := parser.Validate(table); err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err := metric.Aggregate(table); err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	metric.Derive(table, cfg)

	output := metric.OutputPath(input)
	if err := metric.WriteCSV(table, output); err != nil {
		return nil, err
	}
	log.Infof("Wrote %s (%d groups)", output, table.Rows())

	return table, nil
}

package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dycz0fx/task-bench/pkg/config"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Cannot write fixture: %v", err)
	}
	return path
}

func validated(t *testing.T, cfg config.RunConfig) *config.RunConfig {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return &cfg
}

const threeRepetitions = `  Iterations: 10
  Time Steps: 4
  Max Width: 2
  Total Tasks 8
  Total FLOPs 100
  Total Bytes 50
Elapsed Time 1.0 seconds
  Iterations: 10
  Time Steps: 4
  Max Width: 2
  Total Tasks 8
  Total FLOPs 100
  Total Bytes 50
Elapsed Time 1.2 seconds
  Iterations: 10
  Time Steps: 4
  Max Width: 2
  Total Tasks 8
  Total FLOPs 100
  Total Bytes 50
Elapsed Time 0.8 seconds
`

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Cannot open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Cannot parse %s: %v", path, err)
	}
	return rows
}

func TestAnalyzeFile(t *testing.T) {
	cfg := validated(t, config.RunConfig{Nodes: 1, Cores: 2})
	input := writeLog(t, threeRepetitions)

	table, err := analyzeFile(input, cfg)
	if err != nil {
		t.Fatalf("analyzeFile failed: %v", err)
	}
	assert.Equal(t, 1, table.Rows())

	rows := readCSV(t, filepath.Join(filepath.Dir(input), "run.csv"))
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{
		"elapsed", "iterations", "steps", "tasks", "flops", "bytes", "width",
		"std", "reps", "time_per_task",
	}, rows[0])

	mean := (1.0 + 1.2 + 0.8) / 3
	std := math.Sqrt(((1.0-mean)*(1.0-mean) + (1.2-mean)*(1.2-mean) + (0.8-mean)*(0.8-mean)) / 3)
	assert.Equal(t, []string{
		fmt.Sprintf("%e", mean),
		"10", "4", "8", "100", "50", "2",
		fmt.Sprintf("%e", std),
		"3",
		fmt.Sprintf("%e", mean/8*1*2*1000),
	}, rows[1])
}

func TestAnalyzeFileEfficiencyRoundTrip(t *testing.T) {
	cfg := validated(t, config.RunConfig{Nodes: 2, Cores: 2, PeakFlops: 1e2})
	input := writeLog(t, threeRepetitions)

	if _, err := analyzeFile(input, cfg); err != nil {
		t.Fatalf("analyzeFile failed: %v", err)
	}

	rows := readCSV(t, filepath.Join(filepath.Dir(input), "run.csv"))
	header := rows[0]
	assert.Equal(t, "efficiency", header[len(header)-1])

	mean := (1.0 + 1.2 + 0.8) / 3
	assert.Equal(t, fmt.Sprintf("%e", (100/mean/2)/1e2), rows[1][len(header)-1])
}

func TestAnalyzeFileRejectsBrokenGeometry(t *testing.T) {
	cfg := validated(t, config.RunConfig{Nodes: 1, Cores: 2})
	// 9 tasks cannot come from 4 steps at width 2.
	input := writeLog(t, `  Iterations: 10
  Time Steps: 4
  Max Width: 2
  Total Tasks 9
  Total FLOPs 100
  Total Bytes 50
Elapsed Time 1.0 seconds
`)

	_, err := analyzeFile(input, cfg)
	assert.Error(t, err)

	// A rejected file must leave no partial output behind.
	_, statErr := os.Stat(filepath.Join(filepath.Dir(input), "run.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package metric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "run_0001.csv", OutputPath("run_0001.log"))
	assert.Equal(t, filepath.Join("data", "out", "run.csv"), OutputPath(filepath.Join("data", "out", "run.txt")))
	assert.Equal(t, "noext.csv", OutputPath("noext"))
}

func TestWriteCSV(t *testing.T) {
	table := NewTable()
	table.Set("elapsed", FloatColumn([]float64{123.45}))
	table.Set("steps", IntColumn([]int64{4}))
	table.Set("reps", IntColumn([]int64{3}))

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(table, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cannot read back %s: %v", path, err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, []string{
		"elapsed,steps,reps",
		"1.234500e+02,4,3",
	}, lines)
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	table := NewTable()
	table.Set("elapsed", FloatColumn(nil))
	table.Set("steps", IntColumn(nil))

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(table, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cannot read back %s: %v", path, err)
	}

	assert.Equal(t, "elapsed,steps", strings.TrimSpace(string(content)))
}

func TestTableReplaceKeepsPosition(t *testing.T) {
	table := NewTable()
	table.Set("a", IntColumn([]int64{1, 2}))
	table.Set("b", IntColumn([]int64{3, 4}))

	table.Set("a", IntColumn([]int64{5}))
	table.Set("c", FloatColumn([]float64{1.5}))

	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
	assert.Equal(t, []int64{5}, table.Column("a").Ints)
}

func TestSummarize(t *testing.T) {
	table := NewTable()
	table.Set("steps", IntColumn([]int64{4, 8, 4}))
	table.Set("reps", IntColumn([]int64{3, 2, 1}))
	table.Set("time_per_task", FloatColumn([]float64{2.5, 1.25, 4.0}))

	record := Summarize("run.log", "run-id", table)

	assert.Equal(t, "run.log", record.Input)
	assert.Equal(t, "run-id", record.RunID)
	assert.Equal(t, 3, record.Groups)
	assert.Equal(t, int64(6), record.Records)
	assert.Equal(t, int64(4), record.MinSteps)
	assert.Equal(t, int64(8), record.MaxSteps)
	assert.Equal(t, 1.25, record.BestTimePerTask)
}

func TestWriteSummary(t *testing.T) {
	records := []SummaryRecord{
		{Input: "a.log", RunID: "id", Groups: 2, Records: 6, MinSteps: 4, MaxSteps: 8, BestTimePerTask: 1.25},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummary(records, path); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cannot read back %s: %v", path, err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "input,run_id,groups,records,min_steps,max_steps,best_time_per_task", lines[0])
	assert.Contains(t, lines[1], "a.log")
}

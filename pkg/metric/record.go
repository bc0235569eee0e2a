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
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// SummaryRecord is one row of the optional per-run summary file, one per
// successfully processed input.
type SummaryRecord struct {
	Input           string  `csv:"input"`
	RunID           string  `csv:"run_id"`
	Groups          int     `csv:"groups"`
	Records         int64   `csv:"records"`
	MinSteps        int64   `csv:"min_steps"`
	MaxSteps        int64   `csv:"max_steps"`
	BestTimePerTask float64 `csv:"best_time_per_task"`
}

// Summarize condenses an aggregated table into one summary row.
func Summarize(input string, runID string, table *Table) SummaryRecord {
	record := SummaryRecord{
		Input:  input,
		RunID:  runID,
		Groups: table.Rows(),
	}

	for _, reps := range table.Column("reps").Ints {
		record.Records += reps
	}
	for i, steps := range table.Column("steps").Ints {
		if i == 0 || steps < record.MinSteps {
			record.MinSteps = steps
		}
		if i == 0 || steps > record.MaxSteps {
			record.MaxSteps = steps
		}
	}
	for i, t := range table.Column("time_per_task").Floats {
		if i == 0 || t < record.BestTimePerTask {
			record.BestTimePerTask = t
		}
	}

	return record
}

// WriteSummary saves the summary rows of one run.
func WriteSummary(records []SummaryRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	return nil
}

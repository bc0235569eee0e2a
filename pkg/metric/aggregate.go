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

	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces every maximal run of consecutive records sharing a step
// count to one row: elapsed becomes the group mean, std the population
// standard deviation, reps the group size. Grouping is by adjacency only, so
// a step count that recurs after an interruption opens a new group.
//
// The table is rewritten in place. Existing columns keep their position, std
// and reps are appended.
func Aggregate(table *Table) error {
	steps := table.Column("steps").Ints
	elapsed := table.Column("elapsed").Floats
	tasks := table.Column("tasks").Ints
	flops := table.Column("flops").Ints
	bytes := table.Column("bytes").Ints

	var (
		groupSteps   []int64
		groupElapsed []float64
		groupStd     []float64
		groupReps    []int64
		groupTasks   []int64
		groupFlops   []int64
		groupBytes   []int64
	)

	for start := 0; start < len(steps); {
		end := start + 1
		for end < len(steps) && steps[end] == steps[start] {
			end++
		}

		// Repetitions of one run geometry must agree on everything but time.
		if !constant(tasks[start:end]) {
			return fmt.Errorf("tasks vary within the steps=%d group: %v", steps[start], tasks[start:end])
		}
		if !constant(flops[start:end]) {
			return fmt.Errorf("flops vary within the steps=%d group: %v", steps[start], flops[start:end])
		}
		if !constant(bytes[start:end]) {
			return fmt.Errorf("bytes vary within the steps=%d group: %v", steps[start], bytes[start:end])
		}

		run := elapsed[start:end]
		groupSteps = append(groupSteps, steps[start])
		groupElapsed = append(groupElapsed, stat.Mean(run, nil))
		groupStd = append(groupStd, stat.PopStdDev(run, nil))
		groupReps = append(groupReps, int64(end-start))
		groupTasks = append(groupTasks, tasks[start])
		groupFlops = append(groupFlops, flops[start])
		groupBytes = append(groupBytes, bytes[start])

		start = end
	}

	table.Set("steps", IntColumn(groupSteps))
	table.Set("elapsed", FloatColumn(groupElapsed))
	table.Set("std", FloatColumn(groupStd))
	table.Set("reps", IntColumn(groupReps))
	table.Set("tasks", IntColumn(groupTasks))
	table.Set("flops", IntColumn(groupFlops))
	table.Set("bytes", IntColumn(groupBytes))

	// iterations and width are constant file-wide, broadcast one value per group.
	table.Set("iterations", broadcast(table.Column("iterations").Ints, len(groupSteps)))
	table.Set("width", broadcast(table.Column("width").Ints, len(groupSteps)))

	return nil
}

func broadcast(values []int64, rows int) *Column {
	out := make([]int64, rows)
	for i := range out {
		out[i] = values[0]
	}
	return IntColumn(out)
}

func constant(values []int64) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}
	return true
}

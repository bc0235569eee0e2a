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
	"github.com/dycz0fx/task-bench/pkg/config"
)

// Derive appends the computed columns to an aggregated table: time_per_task
// always, efficiency only when a peak bandwidth was configured. The
// efficiency formula is selected by the mode resolved at validation time.
func Derive(table *Table, cfg *config.RunConfig) {
	elapsed := table.Column("elapsed").Floats
	tasks := table.Column("tasks").Ints

	nodes := float64(cfg.Nodes)
	cores := float64(cfg.Cores)

	timePerTask := make([]float64, len(elapsed))
	for i := range elapsed {
		timePerTask[i] = elapsed[i] / float64(tasks[i]) * nodes * cores * 1000
	}
	table.Set("time_per_task", FloatColumn(timePerTask))

	switch cfg.Mode() {
	case config.EfficiencyCompute:
		flops := table.Column("flops").Ints
		efficiency := make([]float64, len(elapsed))
		for i := range elapsed {
			efficiency[i] = (float64(flops[i]) / elapsed[i] / nodes) / cfg.PeakFlops
		}
		table.Set("efficiency", FloatColumn(efficiency))
	case config.EfficiencyMemory:
		bytes := table.Column("bytes").Ints
		efficiency := make([]float64, len(elapsed))
		for i := range elapsed {
			efficiency[i] = (float64(bytes[i]) / elapsed[i] / nodes) / cfg.PeakBytes
		}
		table.Set("efficiency", FloatColumn(efficiency))
	}
}

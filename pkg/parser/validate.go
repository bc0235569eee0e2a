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

package parser

import (
	"fmt"

	"github.com/dycz0fx/task-bench/pkg/metric"
)

// Validate checks the extracted table for internal consistency. A failure
// means the log is malformed or was produced by an incompatible backend; the
// whole file is rejected, there is no partial recovery.
func Validate(table *metric.Table) error {
	records := table.Column(Fields[0].Name).Len()
	for _, field := range Fields {
		if n := table.Column(field.Name).Len(); n != records {
			return fmt.Errorf("field %s matched %d times, want %d", field.Name, n, records)
		}
	}

	if !constant(table.Column("iterations").Ints) {
		return fmt.Errorf("iterations vary within one log: %v", table.Column("iterations").Ints)
	}
	if !constant(table.Column("width").Ints) {
		return fmt.Errorf("width varies within one log: %v", table.Column("width").Ints)
	}

	steps := table.Column("steps").Ints
	tasks := table.Column("tasks").Ints
	width := table.Column("width").Ints
	for i := range tasks {
		if tasks[i] != steps[i]*width[i] {
			return fmt.Errorf("record %d: %d tasks for %d steps at width %d", i, tasks[i], steps[i], width[i])
		}
	}

	return nil
}

func constant(values []int64) bool {
	for _, v := range values {
		if v != values[0] {
			return false
		}
	}
	return true
}

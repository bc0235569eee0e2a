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

// Package parser extracts the labeled run metrics that task-bench backends
// print into their stdout logs and checks them for internal consistency.
package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/dycz0fx/task-bench/pkg/metric"
)

type FieldSpec struct {
	Name    string
	Pattern *regexp.Regexp
	Kind    metric.ColumnKind
}

// Fields lists the recognized log labels in the order their columns appear in
// the output table. Patterns match whole lines, leading whitespace permitted.
var Fields = []FieldSpec{
	{"elapsed", regexp.MustCompile(`(?m)^\s*Elapsed Time ([0-9.e+-]+) seconds$`), metric.KindFloat},
	{"iterations", regexp.MustCompile(`(?m)^\s*Iterations: ([0-9]+)$`), metric.KindInt},
	{"steps", regexp.MustCompile(`(?m)^\s*Time Steps: ([0-9]+)$`), metric.KindInt},
	{"tasks", regexp.MustCompile(`(?m)^\s*Total Tasks ([0-9]+)$`), metric.KindInt},
	{"flops", regexp.MustCompile(`(?m)^\s*Total FLOPs ([0-9]+)$`), metric.KindInt},
	{"bytes", regexp.MustCompile(`(?m)^\s*Total Bytes ([0-9]+)$`), metric.KindInt},
	{"width", regexp.MustCompile(`(?m)^\s*Max Width: ([0-9]+)$`), metric.KindInt},
}

// Extract scans the log text for every field and returns one column per field
// with all occurrences in order of appearance. It performs no cross-field
// checks; see Validate.
func Extract(text string) (*metric.Table, error) {
	table := metric.NewTable()

	for _, field := range Fields {
		matches := field.Pattern.FindAllStringSubmatch(text, -1)

		switch field.Kind {
		case metric.KindFloat:
			values := make([]float64, 0, len(matches))
			for _, m := range matches {
				v, err := strconv.ParseFloat(m[1], 64)
				if err != nil {
					return nil, fmt.Errorf("field %s: cannot parse %q: %w", field.Name, m[1], err)
				}
				values = append(values, v)
			}
			table.Set(field.Name, metric.FloatColumn(values))
		case metric.KindInt:
			values := make([]int64, 0, len(matches))
			for _, m := range matches {
				v, err := strconv.ParseInt(m[1], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("field %s: cannot parse %q: %w", field.Name, m[1], err)
				}
				values = append(values, v)
			}
			table.Set(field.Name, metric.IntColumn(values))
		}
	}

	return table, nil
}

// ParseFile reads one log file and extracts its field columns.
func ParseFile(path string) (*metric.Table, error) {
	log.Debugf("Parsing simulation log: %s", path)

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	table, err := Extract(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

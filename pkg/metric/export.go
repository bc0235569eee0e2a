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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OutputPath derives the CSV path for an input log: same base name, extension
// replaced by .csv.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}

// WriteCSV serializes the table: a header row with the column names in table
// order, then one row per aggregated group. Float columns are rendered in
// scientific notation, int columns in plain base 10.
func WriteCSV(table *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Names()); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	for row := 0; row < table.Rows(); row++ {
		record := make([]string, 0, len(table.Names()))
		for _, name := range table.Names() {
			column := table.Column(name)
			if column.Kind == KindFloat {
				record = append(record, fmt.Sprintf("%e", column.Floats[row]))
			} else {
				record = append(record, strconv.FormatInt(column.Ints[row], 10))
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
	}

	w.Flush()
	return w.Error()
}

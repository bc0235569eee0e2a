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

type ColumnKind int

const (
	KindFloat ColumnKind = iota
	KindInt
)

// Column is one named value sequence of the table. Exactly one of Floats and
// Ints is populated, selected by Kind.
type Column struct {
	Kind   ColumnKind
	Floats []float64
	Ints   []int64
}

func FloatColumn(values []float64) *Column {
	return &Column{Kind: KindFloat, Floats: values}
}

func IntColumn(values []int64) *Column {
	return &Column{Kind: KindInt, Ints: values}
}

func (c *Column) Len() int {
	if c.Kind == KindFloat {
		return len(c.Floats)
	}
	return len(c.Ints)
}

// Table is an insertion-ordered set of equally indexed columns. The insertion
// order defines the CSV column order, so replacing an existing column keeps
// its original position.
type Table struct {
	names   []string
	columns map[string]*Column
}

func NewTable() *Table {
	return &Table{
		columns: make(map[string]*Column),
	}
}

// Set adds a column under the given name, or replaces it in place when the
// name is already present.
func (t *Table) Set(name string, column *Column) {
	if _, ok := t.columns[name]; !ok {
		t.names = append(t.names, name)
	}
	t.columns[name] = column
}

func (t *Table) Column(name string) *Column {
	return t.columns[name]
}

func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	return t.names
}

// Rows returns the length of the first column, which after validation is the
// length of every column.
func (t *Table) Rows() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.columns[t.names[0]].Len()
}

package cli

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Table is a plain-text table aligned by display width, so accented and wide
// characters line up in a terminal.
type Table struct {
	headers []string
	rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells render empty and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		line := make([]string, len(cells))
		for i, cell := range cells {
			line[i] = runewidth.FillRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(line, columnGap), " "))
		b.WriteByte('\n')
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeLine(rule)
	for _, row := range t.rows {
		writeLine(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Truncate shortens s to at most width display cells.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

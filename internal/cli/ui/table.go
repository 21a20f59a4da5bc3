package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Table represents a simple table for displaying tabular data
type Table struct {
	writer     io.Writer
	headers    []string
	rows       [][]string
	rightAlign map[int]bool
	noColor    bool
}

// TableOptions configures table behavior
type TableOptions struct {
	NoColor bool
	// RightAlign lists column indexes rendered flush right, e.g. numbers
	RightAlign []int
}

// NewTable creates a new table with the given headers
func NewTable(w io.Writer, headers []string, opts *TableOptions) *Table {
	t := &Table{
		writer:     w,
		headers:    headers,
		rows:       make([][]string, 0),
		rightAlign: make(map[int]bool),
	}
	if opts != nil {
		t.noColor = opts.NoColor
		for _, col := range opts.RightAlign {
			t.rightAlign[col] = true
		}
	}
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render renders the table to the writer
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	bold := t.color(color.Bold, color.FgCyan)
	bold.Fprintln(t.writer, t.line(t.headers, widths))

	gray := t.color(color.FgHiBlack)
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width)
	}
	gray.Fprintln(t.writer, strings.Join(parts, "  "))

	for _, row := range t.rows {
		fmt.Fprintln(t.writer, t.line(row, widths))
	}
}

// line joins padded cells; the last cell is not padded unless right-aligned
func (t *Table) line(row []string, widths []int) string {
	cells := make([]string, 0, len(row))
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		if i == len(row)-1 && !t.rightAlign[i] {
			cells = append(cells, cell)
			continue
		}
		cells = append(cells, t.pad(i, cell, widths[i]))
	}
	return strings.Join(cells, "  ")
}

func (t *Table) pad(col int, s string, width int) string {
	if t.rightAlign[col] {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

func (t *Table) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.noColor {
		c.DisableColor()
	}
	return c
}

// padRight pads a string with spaces on the right to reach the target width
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// padLeft pads a string with spaces on the left to reach the target width
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// KeyValueTable renders a simple key-value table (2 columns)
type KeyValueTable struct {
	writer  io.Writer
	rows    [][2]string
	noColor bool
}

// NewKeyValueTable creates a new key-value table
func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{
		writer:  w,
		noColor: noColor,
	}
}

// AddRow adds a key-value pair to the table
func (t *KeyValueTable) AddRow(key, value string) {
	t.rows = append(t.rows, [2]string{key, value})
}

// Render renders the key-value table
func (t *KeyValueTable) Render() {
	if len(t.rows) == 0 {
		return
	}

	keyWidth := 0
	for _, row := range t.rows {
		keyWidth = max(keyWidth, utf8.RuneCountInString(row[0]))
	}

	cyan := color.New(color.FgCyan)
	if t.noColor {
		cyan.DisableColor()
	}
	for _, row := range t.rows {
		cyan.Fprint(t.writer, padRight(row[0]+":", keyWidth+1))
		fmt.Fprintf(t.writer, " %s\n", row[1])
	}
}

// Divider renders a horizontal divider line
func Divider(w io.Writer, width int, noColor bool) {
	if width == 0 {
		width = 80
	}

	gray := color.New(color.FgHiBlack)
	if noColor {
		gray.DisableColor()
	}
	gray.Fprintln(w, strings.Repeat("─", width))
}

// Header renders a styled header
func Header(w io.Writer, title string, noColor bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
	}
	bold.Fprintln(w, title)
	Divider(w, utf8.RuneCountInString(title), noColor)
}

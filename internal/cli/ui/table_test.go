package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Line", "Kind", "Name"}, &TableOptions{NoColor: true, RightAlign: []int{0}})

	table.AddRow("1", "Keyword", "PROGRAM")
	table.AddRow("12", "Identifier", "Main")

	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Line  Kind        Name", lines[0])
	assert.Equal(t, "────  ──────────  ───────", lines[1])
	assert.Equal(t, "   1  Keyword     PROGRAM", lines[2])
	assert.Equal(t, "  12  Identifier  Main", lines[3])
	assert.Equal(t, 2, table.Len())
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{}, &TableOptions{NoColor: true})

	table.Render()

	assert.Empty(t, buf.String())
}

func TestTableNilOptions(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Code"}, nil)
	table.AddRow("301")
	table.Render()

	assert.Contains(t, buf.String(), "301")
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)

	kv.AddRow("Tokens", "5")
	kv.AddRow("Identifiers", "1")
	kv.Render()

	assert.Equal(t, "Tokens:      5\nIdentifiers: 1\n", buf.String())
}

func TestKeyValueTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewKeyValueTable(&buf, true).Render()
	assert.Empty(t, buf.String())
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Tokens", true)

	assert.Equal(t, "Tokens\n──────\n", buf.String())
}

func TestDividerDefaultWidth(t *testing.T) {
	var buf bytes.Buffer
	Divider(&buf, 0, true)

	assert.Equal(t, strings.Repeat("─", 80)+"\n", buf.String())
}

package inference

import (
	"fmt"
	"regexp"
	"strings"
)

// NativeType is the column-level type a parser read from the source cells.
type NativeType int

const (
	NativeText NativeType = iota
	NativeNumber
	NativeBoolean
)

func (t NativeType) String() string {
	switch t {
	case NativeNumber:
		return "number"
	case NativeBoolean:
		return "boolean"
	}
	return "text"
}

// Column holds a column name, its first non-missing values and the parser's type hint.
type Column struct {
	Name    string
	Samples []string
	Native  NativeType
}

type Table struct {
	Columns  []Column
	RowCount int
}

type cellKind int

const (
	cellUntyped cellKind = iota
	cellText
	cellNumber
	cellBoolean
)

type cell struct {
	text string
	kind cellKind
}

func untyped(text string) cell {
	return cell{text: text, kind: cellUntyped}
}

var (
	numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

	missingValues = map[string]struct{}{
		"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
		"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {},
		"NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
	}
)

func isMissing(c cell) bool {
	if c.kind == cellNumber || c.kind == cellBoolean {
		return false
	}
	_, ok := missingValues[strings.TrimSpace(c.text)]
	return ok
}

func (c cell) resolvedKind() cellKind {
	if c.kind != cellUntyped {
		return c.kind
	}
	text := strings.TrimSpace(c.text)
	switch strings.ToLower(text) {
	case "true", "false":
		return cellBoolean
	}
	if numberPattern.MatchString(text) {
		return cellNumber
	}
	return cellText
}

func isBlankRow(row []cell) bool {
	for _, c := range row {
		if strings.TrimSpace(c.text) != "" {
			return false
		}
	}
	return true
}

// buildTable assembles columns from a header row and the data rows below it.
// Blank rows must already be removed.
func buildTable(header []string, rows [][]cell) Table {
	names := columnNames(header)
	table := Table{
		Columns:  make([]Column, len(names)),
		RowCount: len(rows),
	}

	for i, name := range names {
		column := Column{Name: name, Native: NativeText}
		missing := 0
		present := 0
		allNumbers := true
		allBooleans := true

		for _, row := range rows {
			c := cell{}
			if i < len(row) {
				c = row[i]
			}
			if isMissing(c) {
				missing++
				continue
			}
			present++
			if len(column.Samples) < sampleSize {
				column.Samples = append(column.Samples, strings.TrimSpace(c.text))
			}
			switch c.resolvedKind() {
			case cellNumber:
				allBooleans = false
			case cellBoolean:
				allNumbers = false
			default:
				allNumbers = false
				allBooleans = false
			}
		}

		switch {
		case present == 0:
		case allBooleans && missing == 0:
			column.Native = NativeBoolean
		case allNumbers:
			column.Native = NativeNumber
		}
		table.Columns[i] = column
	}

	return table
}

// columnNames trims header cells, names blank ones after their position and
// suffixes repeated names with ".1", ".2", ...
func columnNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		base := name
		for {
			if _, ok := seen[name]; !ok {
				break
			}
			seen[base]++
			name = fmt.Sprintf("%s.%d", base, seen[base])
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

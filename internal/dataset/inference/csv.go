package inference

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"dataforge-server/internal/dataset/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func parseCSV(content []byte) (Table, error) {
	text := bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(text)) == 0 {
		return Table{}, domain.NewInputError("CSV file is empty")
	}

	reader := csv.NewReader(bytes.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]cell
	width := -1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, domain.NewInputError("Failed to process CSV file: %s", err)
		}

		row := make([]cell, len(record))
		for i, value := range record {
			row[i] = untyped(value)
		}

		if width < 0 {
			if !isBlankRow(row) {
				width = len(row)
			}
		} else if len(row) > width && !isBlankRow(row) {
			line, _ := reader.FieldPos(0)
			return Table{}, domain.NewInputError("Failed to process CSV file: line %d: expected %d fields, saw %d", line, width, len(row))
		}

		rows = append(rows, row)
	}

	return tableFromRows("CSV", rows)
}

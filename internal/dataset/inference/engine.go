package inference

import (
	"fmt"
	"log/slog"
	"strings"

	"dataforge-server/internal/dataset/domain"
)

// DefaultMaxFileSize caps uploads at 10 MiB.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

type Options struct {
	MaxFileSize int64
}

type Engine struct {
	maxFileSize int64
}

func NewEngine(opts Options) *Engine {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	return &Engine{maxFileSize: opts.MaxFileSize}
}

// InferFields parses an uploaded spreadsheet and returns one field per column.
func (e *Engine) InferFields(filename string, content []byte) ([]domain.Field, error) {
	table, err := e.Parse(filename, content)
	if err != nil {
		return nil, err
	}

	fields, err := InferFields(table)
	if err != nil {
		return nil, domain.NewInputError("Failed to infer fields: %s", err)
	}

	slog.Debug("fields inferred",
		slog.String("filename", filename),
		slog.Int("columns", len(fields)),
		slog.Int("rows", table.RowCount))

	return fields, nil
}

// Parse validates the upload and reads it into a Table. Every failure is an input error.
func (e *Engine) Parse(filename string, content []byte) (Table, error) {
	if len(content) == 0 {
		return Table{}, domain.NewInputError("File is empty or corrupted")
	}

	if int64(len(content)) > e.maxFileSize {
		return Table{}, domain.NewInputError("File size exceeds maximum limit of %s", formatSize(e.maxFileSize))
	}

	switch extension(filename) {
	case "":
		return Table{}, domain.NewInputError("File has no extension")
	case "csv":
		return parseCSV(content)
	case "xlsx":
		return parseXLSX(content)
	case "xls":
		return parseXLS(content)
	}

	return Table{}, domain.NewInputError("Unsupported file format. Please upload CSV or Excel files.")
}

func (e *Engine) MaxFileSize() int64 {
	return e.maxFileSize
}

func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

func formatSize(size int64) string {
	const mib = 1024 * 1024
	if size%mib == 0 {
		return fmt.Sprintf("%dMB", size/mib)
	}
	return fmt.Sprintf("%.1fMB", float64(size)/mib)
}

// tableFromRows uses the first non-blank row as header and the remaining non-blank rows as data.
// A sheet without any rows reports missing data rows before missing columns.
func tableFromRows(source string, rows [][]cell) (Table, error) {
	var header []string
	var data [][]cell

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if header == nil {
			header = make([]string, len(row))
			for i, c := range row {
				header[i] = c.text
			}
			continue
		}
		data = append(data, row)
	}

	if len(data) == 0 {
		return Table{}, domain.NewInputError("%s file has no data rows", source)
	}

	if len(header) == 0 {
		return Table{}, domain.NewInputError("%s file has no valid columns", source)
	}

	return buildTable(header, data), nil
}

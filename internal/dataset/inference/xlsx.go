package inference

import (
	"bytes"

	"dataforge-server/internal/dataset/domain"

	"github.com/xuri/excelize/v2"
)

func parseXLSX(content []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return Table{}, excelFailure(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, domain.NewInputError("Excel file contains no sheets")
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, excelFailure(err)
	}

	rows := make([][]cell, len(raw))
	for r, values := range raw {
		row := make([]cell, len(values))
		for c, value := range values {
			row[c] = xlsxCell(f, sheet, c+1, r+1, value)
		}
		rows[r] = row
	}

	return tableFromRows("Excel", rows)
}

// xlsxCell types a raw cell value. Only numeric-looking values need the cell type to tell
// numbers from booleans and numeric text.
func xlsxCell(f *excelize.File, sheet string, col, row int, value string) cell {
	if value == "" || !numberPattern.MatchString(value) {
		return cell{text: value, kind: cellText}
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cell{text: value, kind: cellText}
	}
	cellType, err := f.GetCellType(sheet, name)
	if err != nil {
		return cell{text: value, kind: cellText}
	}

	switch cellType {
	case excelize.CellTypeBool:
		if value == "1" {
			return cell{text: "true", kind: cellBoolean}
		}
		return cell{text: "false", kind: cellBoolean}
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return cell{text: value, kind: cellNumber}
	}
	return cell{text: value, kind: cellText}
}

func excelFailure(err error) error {
	return domain.NewInputError("Failed to process Excel file: %s. Please ensure it's a valid .xlsx or .xls file.", err)
}

package inference

import (
	"bytes"
	"fmt"

	"dataforge-server/internal/dataset/domain"

	"github.com/extrame/xls"
)

func parseXLS(content []byte) (table Table, err error) {
	// the xls reader panics on some malformed workbooks
	defer func() {
		if r := recover(); r != nil {
			table = Table{}
			err = excelFailure(fmt.Errorf("%v", r))
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return Table{}, excelFailure(err)
	}

	if workbook.NumSheets() == 0 {
		return Table{}, domain.NewInputError("Excel file contains no sheets")
	}

	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return Table{}, domain.NewInputError("Excel sheet is empty or corrupted")
	}

	var rows [][]cell
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		values := make([]cell, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			values[c] = untyped(row.Col(c))
		}
		rows = append(rows, values)
	}

	return tableFromRows("Excel", rows)
}

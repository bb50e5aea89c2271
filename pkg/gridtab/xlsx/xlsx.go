// Package xlsx reads and writes workbook sheets as tabular string data.
// It is the only package in the module that performs file I/O.
package xlsx

import (
	"fmt"

	"github.com/gridtab/gridtab/pkg/gridtab/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads one sheet of a workbook into a table. An empty sheet name
// selects the first sheet in the workbook.
func ReadSheet(path, sheet string) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return models.Table(rows), nil
}

// WriteSheet writes a table to a new workbook at path, replacing any
// existing file. An empty sheet name writes to the default sheet.
func WriteSheet(path, sheet string, data models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	} else {
		sheet = "Sheet1"
	}

	for rowIdx, row := range data {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// DataBounds returns the bounding GridRange of non-empty cells in a table,
// or false when the table holds no data at all.
func DataBounds(data models.Table) (models.GridRange, bool) {
	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for rowIdx, row := range data {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	if minRow < 0 {
		return models.GridRange{}, false
	}
	return models.GridRange{
		StartRow: minRow,
		EndRow:   maxRow + 1,
		StartCol: minCol,
		EndCol:   maxCol + 1,
	}, true
}

package model

import (
	"fmt"
	"sort"
	"strings"
)

// ColumnLetter extracts the column letters of a cell reference, e.g.
// "BC12" -> "BC".
func ColumnLetter(cellRef string) string {
	ref := strings.ToUpper(cellRef)
	for i := 0; i < len(ref); i++ {
		if ref[i] < 'A' || ref[i] > 'Z' {
			return ref[:i]
		}
	}
	return ref
}

// ColumnIndex converts column letters to a 1-based index: A=1, Z=26,
// AA=27.
func ColumnIndex(letter string) int {
	idx := 0
	for i := 0; i < len(letter); i++ {
		idx = idx*26 + int(letter[i]-'A') + 1
	}
	return idx
}

// CellRef builds an A1-style reference from a column letter and a
// 1-based row number.
func CellRef(column string, row int) string {
	return fmt.Sprintf("%s%d", column, row)
}

// findOrCreateRow returns the row with the given 1-based number,
// appending a new empty row at the end of sheetData when absent. Rows
// are not renumbered or reordered on append; only cells within a row
// carry an ordering invariant.
func (sd *xlsxSheetData) findOrCreateRow(number int) *xlsxRow {
	for _, row := range sd.Rows {
		if row.R == number {
			return row
		}
	}
	row := &xlsxRow{R: number}
	sd.Rows = append(sd.Rows, row)
	return row
}

// findOrCreateCell returns the cell at {column}{row}, creating it when
// absent. After an insertion the row's cells are re-sorted so they stay
// in ascending column order, which serialization relies on.
func (r *xlsxRow) findOrCreateCell(column string, rowNumber int) *xlsxCell {
	ref := CellRef(column, rowNumber)
	for _, c := range r.Cells {
		if c.R == ref {
			return c
		}
	}
	cell := &xlsxCell{R: ref}
	r.Cells = append(r.Cells, cell)
	sort.SliceStable(r.Cells, func(i, j int) bool {
		return ColumnIndex(ColumnLetter(r.Cells[i].R)) < ColumnIndex(ColumnLetter(r.Cells[j].R))
	})
	return cell
}

// setSerial turns the cell into a plain numeric cell holding the given
// day-count: the type attribute is cleared and the value element is
// overwritten.
func (c *xlsxCell) setSerial(serial int) {
	c.T = ""
	c.V = fmt.Sprintf("%d", serial)
}

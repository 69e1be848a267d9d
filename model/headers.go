package model

import (
	"strconv"
	"strings"
)

// The header row of a worksheet is always its first row.
const headerRowIndex = 1

// Required header labels, matched case-insensitively.
const (
	StartDateHeader = "target start date"
	EndDateHeader   = "target end date"
)

// HeaderMap maps lower-cased header text from the header row to its
// column letter. Blank headers are skipped; a duplicate header keeps the
// last-seen column.
func HeaderMap(ws *xlsxWorksheet, sharedStrings []string, sheetName string) (map[string]string, error) {
	var headerRow *xlsxRow
	for _, row := range ws.SheetData.Rows {
		if row.R == headerRowIndex {
			headerRow = row
			break
		}
	}
	if headerRow == nil {
		return nil, &MissingHeaderRowError{Sheet: sheetName}
	}

	mapping := make(map[string]string)
	for _, cell := range headerRow.Cells {
		header := strings.TrimSpace(cellText(cell, sharedStrings))
		if header == "" {
			continue
		}
		mapping[strings.ToLower(header)] = ColumnLetter(cell.R)
	}
	return mapping, nil
}

// Headers resolves a worksheet by name and returns its header map.
func Headers(a *Archive, sheetName string) (map[string]string, error) {
	sharedStrings, err := LoadSharedStrings(a)
	if err != nil {
		return nil, err
	}
	sheetPath, err := SheetPath(a, sheetName)
	if err != nil {
		return nil, err
	}
	data, err := a.Part(sheetPath)
	if err != nil {
		return nil, err
	}
	ws, err := unmarshalWorksheet(data)
	if err != nil {
		return nil, &ArchiveError{Path: a.Path, Err: err}
	}
	return HeaderMap(ws, sharedStrings, sheetName)
}

// cellText resolves the display text of a cell: inline string, shared
// string reference, or the literal value.
func cellText(c *xlsxCell, sharedStrings []string) string {
	if c.T == "inlineStr" {
		return c.IS.text()
	}
	if c.V == "" {
		return ""
	}
	if c.T == "s" {
		idx, err := strconv.Atoi(c.V)
		if err != nil || idx < 0 || idx >= len(sharedStrings) {
			return ""
		}
		return sharedStrings[idx]
	}
	return c.V
}

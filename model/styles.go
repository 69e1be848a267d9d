package model

// DateTimeFormatCode is the display format applied to patched date
// cells.
const DateTimeFormatCode = "yyyy-mm-dd hh:mm:ss"

// Identifiers up to 163 are reserved for the format's built-in number
// formats; custom formats are allocated above them.
const builtinNumFmtMax = 163

// EnsureDateStyle makes sure the style table holds a numeric format with
// the given code and a cell-format record applying it, reusing existing
// entries where they match, and returns the index of that record. Both
// sub-tables are mutated in place; the caller re-serializes the part.
func EnsureDateStyle(ss *xlsxStyleSheet, formatCode string) int {
	numFmtID := ensureNumFmt(ss, formatCode)

	if ss.CellXfs == nil {
		ss.CellXfs = &xlsxCellXfs{}
	}
	xfs := ss.CellXfs
	for i, xf := range xfs.Xf {
		if xf.NumFmtID == numFmtID && xf.ApplyNumberFormat {
			return i
		}
	}

	var xf xlsxXf
	if len(xfs.Xf) > 0 {
		// Clone everything but the number format from the first record
		// so font, fill and border references stay workbook-consistent.
		xf = *xfs.Xf[0]
		xf.Alignment = nil
		xf.Protection = nil
	}
	xf.NumFmtID = numFmtID
	xf.ApplyNumberFormat = true
	xfs.Xf = append(xfs.Xf, &xf)
	xfs.Count = len(xfs.Xf)
	return len(xfs.Xf) - 1
}

// ensureNumFmt returns the identifier of a numeric format with the given
// code, allocating the next free identifier above the built-in range
// when no existing entry matches.
func ensureNumFmt(ss *xlsxStyleSheet, formatCode string) int {
	if ss.NumFmts == nil {
		ss.NumFmts = &xlsxNumFmts{}
	}
	fmts := ss.NumFmts
	for _, nf := range fmts.NumFmt {
		if nf.FormatCode == formatCode {
			return nf.NumFmtID
		}
	}

	id := builtinNumFmtMax + 1
	for _, nf := range fmts.NumFmt {
		if nf.NumFmtID >= id {
			id = nf.NumFmtID + 1
		}
	}
	fmts.NumFmt = append(fmts.NumFmt, &xlsxNumFmt{NumFmtID: id, FormatCode: formatCode})
	fmts.Count = len(fmts.NumFmt)
	return id
}

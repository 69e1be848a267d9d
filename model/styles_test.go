package model

import (
	"encoding/xml"
	"strings"
	"testing"
)

var testStyleSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><numFmts count="1"><numFmt numFmtId="170" formatCode="0.00%"/></numFmts><fonts count="1"><font><sz val="11"/><name val="Calibri"/></font></fonts><fills count="2"><fill><patternFill patternType="none"/></fill><fill><patternFill patternType="gray125"/></fill></fills><borders count="1"><border><left/><right/><top/><bottom/><diagonal/></border></borders><cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs><cellXfs count="2"><xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0"/><xf numFmtId="170" fontId="0" fillId="0" borderId="0" xfId="0" applyNumberFormat="1"/></cellXfs></styleSheet>`

func parseTestStyles(t *testing.T) *xlsxStyleSheet {
	ss, err := unmarshalStyleSheet([]byte(testStyleSheet))
	if err != nil {
		t.Fatalf("Failed to parse the style sheet: %s", err)
	}
	return ss
}

func TestEnsureDateStyleAllocatesAboveBuiltins(t *testing.T) {
	ss := parseTestStyles(t)
	idx := EnsureDateStyle(ss, DateTimeFormatCode)

	nf := ss.NumFmts.NumFmt[len(ss.NumFmts.NumFmt)-1]
	if nf.FormatCode != DateTimeFormatCode {
		t.Errorf("Format code = %q, expected %q", nf.FormatCode, DateTimeFormatCode)
	}
	// 170 is taken, so the new identifier has to clear both the builtin
	// ceiling and the existing custom entry.
	if nf.NumFmtID != 171 {
		t.Errorf("New numFmtId = %d, expected 171", nf.NumFmtID)
	}
	if ss.NumFmts.Count != 2 {
		t.Errorf("numFmts count = %d, expected 2", ss.NumFmts.Count)
	}

	xf := ss.CellXfs.Xf[idx]
	if xf.NumFmtID != nf.NumFmtID || !xf.ApplyNumberFormat {
		t.Errorf("Cell format %d does not apply the new number format: %#v", idx, xf)
	}
	if ss.CellXfs.Count != len(ss.CellXfs.Xf) {
		t.Errorf("cellXfs count = %d, expected %d", ss.CellXfs.Count, len(ss.CellXfs.Xf))
	}
}

func TestEnsureDateStyleIsIdempotent(t *testing.T) {
	ss := parseTestStyles(t)
	first := EnsureDateStyle(ss, DateTimeFormatCode)
	numFmts, xfs := len(ss.NumFmts.NumFmt), len(ss.CellXfs.Xf)

	second := EnsureDateStyle(ss, DateTimeFormatCode)
	if first != second {
		t.Errorf("Second resolution returned %d, expected %d", second, first)
	}
	if len(ss.NumFmts.NumFmt) != numFmts || len(ss.CellXfs.Xf) != xfs {
		t.Error("Repeated resolution grew the style tables")
	}
}

func TestEnsureDateStyleReusesMatchingCode(t *testing.T) {
	ss := parseTestStyles(t)
	idx := EnsureDateStyle(ss, "0.00%")

	if idx != 1 {
		t.Errorf("Expected the existing cell format 1 to be reused, got %d", idx)
	}
	if len(ss.NumFmts.NumFmt) != 1 {
		t.Errorf("numFmt count = %d, expected the existing entry reused", len(ss.NumFmts.NumFmt))
	}
}

func TestEnsureDateStyleOnEmptyStyleSheet(t *testing.T) {
	var ss xlsxStyleSheet
	idx := EnsureDateStyle(&ss, DateTimeFormatCode)

	if idx != 0 {
		t.Errorf("Cell format index = %d, expected 0", idx)
	}
	if ss.NumFmts.NumFmt[0].NumFmtID != builtinNumFmtMax+1 {
		t.Errorf("numFmtId = %d, expected %d", ss.NumFmts.NumFmt[0].NumFmtID, builtinNumFmtMax+1)
	}

	out, err := marshalPart(&ss)
	if err != nil {
		t.Fatalf("Failed to serialize the style sheet: %s", err)
	}
	if !strings.Contains(string(out), `formatCode="`+DateTimeFormatCode+`"`) {
		t.Errorf("Serialized styles are missing the date format: %s", out)
	}
}

func TestStyleSheetRoundTripKeepsUnmodeledTables(t *testing.T) {
	ss := parseTestStyles(t)
	out, err := marshalPart(ss)
	if err != nil {
		t.Fatalf("Failed to serialize the style sheet: %s", err)
	}

	var again xlsxStyleSheet
	if err = xml.Unmarshal(out, &again); err != nil {
		t.Fatalf("Re-parsing the serialized styles failed: %s", err)
	}
	if again.Fonts == nil || !strings.Contains(again.Fonts.Inner, "Calibri") {
		t.Error("Font table was not carried through serialization")
	}
	if again.Fills == nil || !strings.Contains(again.Fills.Inner, "gray125") {
		t.Error("Fill table was not carried through serialization")
	}
}

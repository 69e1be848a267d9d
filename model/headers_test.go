package model

import (
	"testing"
)

var testWorksheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><dimension ref="A1:D2"/><sheetData><row r="1" spans="1:4"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c><c r="C1" t="inlineStr"><is><t>Owner</t></is></c><c r="D1"/><c r="E1" t="s"><v>2</v></c></row><row r="2" spans="1:4"><c r="A2" t="s"><v>3</v></c></row></sheetData></worksheet>`

var testHeaderStrings = []string{
	"Target Start Date",
	"TARGET end date",
	"  Status  ",
	"in progress",
}

func parseTestWorksheet(t *testing.T) *xlsxWorksheet {
	ws, err := unmarshalWorksheet([]byte(testWorksheet))
	if err != nil {
		t.Fatalf("Failed to parse the worksheet: %s", err)
	}
	return ws
}

func TestHeaderMap(t *testing.T) {
	headers, err := HeaderMap(parseTestWorksheet(t), testHeaderStrings, "Sheet1")
	if err != nil {
		t.Fatalf("HeaderMap failed: %s", err)
	}

	for _, r := range []struct {
		header string
		expect string
	}{
		{"target start date", "A"},
		{"target end date", "B"},
		{"owner", "C"},
		{"status", "E"},
	} {
		if column := headers[r.header]; column != r.expect {
			t.Errorf("Header %q mapped to %q, expected %q", r.header, column, r.expect)
		}
	}
	// D1 is blank and is not a header.
	if len(headers) != 4 {
		t.Errorf("Header count = %d, expected 4: %#v", len(headers), headers)
	}
}

func TestHeaderMapMissingHeaderRow(t *testing.T) {
	ws := parseTestWorksheet(t)
	ws.SheetData.Rows = ws.SheetData.Rows[1:]

	_, err := HeaderMap(ws, testHeaderStrings, "Sheet1")
	if _, ok := err.(*MissingHeaderRowError); !ok {
		t.Errorf("Expected a MissingHeaderRowError, got %#v", err)
	}
}

func TestCellText(t *testing.T) {
	for _, r := range []struct {
		cell   xlsxCell
		expect string
	}{
		{xlsxCell{R: "A1", T: "s", V: "0"}, "Target Start Date"},
		{xlsxCell{R: "B1", T: "inlineStr", IS: &xlsxRichText{T: &xlsxText{Value: "Owner"}}}, "Owner"},
		{xlsxCell{R: "C1", V: "42"}, "42"},
		{xlsxCell{R: "D1"}, ""},
		{xlsxCell{R: "E1", T: "s", V: "99"}, ""},
		{xlsxCell{R: "F1", T: "s", V: "bogus"}, ""},
	} {
		if text := cellText(&r.cell, testHeaderStrings); text != r.expect {
			t.Errorf("cellText(%q) = %q, expected %q", r.cell.R, text, r.expect)
		}
	}
}

func TestSharedStringRichTextRuns(t *testing.T) {
	si := xlsxRichText{
		R: []xlsxRun{
			{T: xlsxText{Value: "Target "}},
			{T: xlsxText{Value: "End "}},
			{T: xlsxText{Value: "Date"}},
		},
	}
	if text := si.text(); text != "Target End Date" {
		t.Errorf("Rich text runs concatenated to %q", text)
	}

	plain := xlsxRichText{T: &xlsxText{Value: "Status"}}
	if text := plain.text(); text != "Status" {
		t.Errorf("Plain string item resolved to %q", text)
	}
}

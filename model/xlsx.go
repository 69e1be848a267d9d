package model

import (
	"encoding/xml"
)

// Well-known part names inside the workbook container.
const (
	workbookPart      = "xl/workbook.xml"
	workbookRelsPart  = "xl/_rels/workbook.xml.rels"
	sharedStringsPart = "xl/sharedStrings.xml"
	stylesPart        = "xl/styles.xml"
)

// xlsxRelationships maps xl/_rels/workbook.xml.rels: relationship IDs to
// the part each one points at.
type xlsxRelationships struct {
	XMLName       xml.Name           `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationships []xlsxRelationship `xml:"Relationship"`
}

type xlsxRelationship struct {
	ID         string `xml:"Id,attr"`
	Target     string `xml:",attr"`
	Type       string `xml:",attr"`
	TargetMode string `xml:",attr,omitempty"`
}

// xlsxWorkbook maps the sheet declarations of xl/workbook.xml. Only the
// sheet list is needed; this part is never rewritten.
type xlsxWorkbook struct {
	XMLName xml.Name    `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main workbook"`
	Sheets  []xlsxSheet `xml:"sheets>sheet"`
}

type xlsxSheet struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	ID      string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	State   string `xml:"state,attr,omitempty"`
}

// xlsxSST maps xl/sharedStrings.xml. Read-only input.
type xlsxSST struct {
	XMLName     xml.Name       `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main sst"`
	Count       string         `xml:"count,attr,omitempty"`
	UniqueCount string         `xml:"uniqueCount,attr,omitempty"`
	SI          []xlsxRichText `xml:"si"`
}

// xlsxRichText holds a string item: either a single text node or a list
// of rich-text runs. The same shape serves <si> and inline <is> strings.
type xlsxRichText struct {
	T *xlsxText `xml:"t"`
	R []xlsxRun `xml:"r"`
}

type xlsxRun struct {
	T xlsxText `xml:"t"`
}

type xlsxText struct {
	Space string `xml:"http://www.w3.org/XML/1998/namespace space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// text concatenates all fragments of the string item.
func (rt *xlsxRichText) text() string {
	if rt == nil {
		return ""
	}
	var s string
	if rt.T != nil {
		s = rt.T.Value
	}
	for _, r := range rt.R {
		s += r.T.Value
	}
	return s
}

// xlsxElem carries an element the patcher does not model, so that it
// survives re-serialization of the part it lives in.
type xlsxElem struct {
	Attrs []xml.Attr `xml:",any,attr"`
	Inner string     `xml:",innerxml"`
}

// xlsxWorksheet maps a worksheet part. Fields are declared in schema
// order; everything the patcher never inspects stays an xlsxElem holder.
type xlsxWorksheet struct {
	XMLName               xml.Name        `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main worksheet"`
	SheetPr               *xlsxElem       `xml:"sheetPr"`
	Dimension             *xlsxDimension  `xml:"dimension"`
	SheetViews            *xlsxElem       `xml:"sheetViews"`
	SheetFormatPr         *xlsxElem       `xml:"sheetFormatPr"`
	Cols                  *xlsxElem       `xml:"cols"`
	SheetData             xlsxSheetData   `xml:"sheetData"`
	SheetProtection       *xlsxElem       `xml:"sheetProtection"`
	AutoFilter            *xlsxElem       `xml:"autoFilter"`
	SortState             *xlsxElem       `xml:"sortState"`
	MergeCells            *xlsxElem       `xml:"mergeCells"`
	PhoneticPr            *xlsxElem       `xml:"phoneticPr"`
	ConditionalFormatting []xlsxElem      `xml:"conditionalFormatting"`
	DataValidations       *xlsxElem       `xml:"dataValidations"`
	Hyperlinks            *xlsxHyperlinks `xml:"hyperlinks"`
	PrintOptions          *xlsxElem       `xml:"printOptions"`
	PageMargins           *xlsxElem       `xml:"pageMargins"`
	PageSetUp             *xlsxElem       `xml:"pageSetup"`
	HeaderFooter          *xlsxElem       `xml:"headerFooter"`
	RowBreaks             *xlsxElem       `xml:"rowBreaks"`
	ColBreaks             *xlsxElem       `xml:"colBreaks"`
	Drawing               *xlsxRelElem    `xml:"drawing"`
	LegacyDrawing         *xlsxRelElem    `xml:"legacyDrawing"`
	Picture               *xlsxRelElem    `xml:"picture"`
	TableParts            *xlsxElem       `xml:"tableParts"`
	ExtLst                *xlsxElem       `xml:"extLst"`
}

type xlsxDimension struct {
	Ref string `xml:"ref,attr"`
}

// xlsxRelElem is an element whose only attribute is a relationship id.
type xlsxRelElem struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr,omitempty"`
}

type xlsxHyperlinks struct {
	Hyperlink []xlsxHyperlink `xml:"hyperlink"`
}

type xlsxHyperlink struct {
	Ref      string `xml:"ref,attr"`
	RID      string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr,omitempty"`
	Location string `xml:"location,attr,omitempty"`
	Display  string `xml:"display,attr,omitempty"`
	Tooltip  string `xml:"tooltip,attr,omitempty"`
}

type xlsxSheetData struct {
	Rows []*xlsxRow `xml:"row"`
}

type xlsxRow struct {
	R            int         `xml:"r,attr"`
	Spans        string      `xml:"spans,attr,omitempty"`
	S            int         `xml:"s,attr,omitempty"`
	CustomFormat bool        `xml:"customFormat,attr,omitempty"`
	Ht           string      `xml:"ht,attr,omitempty"`
	Hidden       bool        `xml:"hidden,attr,omitempty"`
	CustomHeight bool        `xml:"customHeight,attr,omitempty"`
	OutlineLevel uint8       `xml:"outlineLevel,attr,omitempty"`
	Cells        []*xlsxCell `xml:"c"`
}

type xlsxCell struct {
	R  string        `xml:"r,attr,omitempty"`
	S  int           `xml:"s,attr,omitempty"`
	T  string        `xml:"t,attr,omitempty"`
	F  *xlsxElem     `xml:"f"`
	V  string        `xml:"v,omitempty"`
	IS *xlsxRichText `xml:"is"`
}

// xlsxStyleSheet maps xl/styles.xml. Only numFmts and cellXfs are
// mutated; the remaining sub-tables pass through untouched.
type xlsxStyleSheet struct {
	XMLName      xml.Name     `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main styleSheet"`
	NumFmts      *xlsxNumFmts `xml:"numFmts"`
	Fonts        *xlsxElem    `xml:"fonts"`
	Fills        *xlsxElem    `xml:"fills"`
	Borders      *xlsxElem    `xml:"borders"`
	CellStyleXfs *xlsxElem    `xml:"cellStyleXfs"`
	CellXfs      *xlsxCellXfs `xml:"cellXfs"`
	CellStyles   *xlsxElem    `xml:"cellStyles"`
	Dxfs         *xlsxElem    `xml:"dxfs"`
	TableStyles  *xlsxElem    `xml:"tableStyles"`
	Colors       *xlsxElem    `xml:"colors"`
	ExtLst       *xlsxElem    `xml:"extLst"`
}

type xlsxNumFmts struct {
	Count  int           `xml:"count,attr"`
	NumFmt []*xlsxNumFmt `xml:"numFmt"`
}

type xlsxNumFmt struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xlsxCellXfs struct {
	Count int       `xml:"count,attr"`
	Xf    []*xlsxXf `xml:"xf"`
}

type xlsxXf struct {
	NumFmtID          int       `xml:"numFmtId,attr"`
	FontID            int       `xml:"fontId,attr"`
	FillID            int       `xml:"fillId,attr"`
	BorderID          int       `xml:"borderId,attr"`
	XfID              *int      `xml:"xfId,attr,omitempty"`
	ApplyNumberFormat bool      `xml:"applyNumberFormat,attr,omitempty"`
	ApplyFont         bool      `xml:"applyFont,attr,omitempty"`
	ApplyFill         bool      `xml:"applyFill,attr,omitempty"`
	ApplyBorder       bool      `xml:"applyBorder,attr,omitempty"`
	ApplyAlignment    bool      `xml:"applyAlignment,attr,omitempty"`
	ApplyProtection   bool      `xml:"applyProtection,attr,omitempty"`
	Alignment         *xlsxElem `xml:"alignment"`
	Protection        *xlsxElem `xml:"protection"`
}

func unmarshalWorksheet(data []byte) (*xlsxWorksheet, error) {
	var ws xlsxWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func unmarshalStyleSheet(data []byte) (*xlsxStyleSheet, error) {
	var ss xlsxStyleSheet
	if err := xml.Unmarshal(data, &ss); err != nil {
		return nil, err
	}
	return &ss, nil
}

// marshalPart serializes a part back to XML with the standard
// declaration, ready to be stored as a replacement member.
func marshalPart(v interface{}) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	out = append(out, body...)
	return out, nil
}

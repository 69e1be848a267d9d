package model

import (
	"encoding/xml"
	"strings"
)

// SheetNames returns the worksheet names declared in the workbook
// manifest, in declaration order.
func SheetNames(a *Archive) ([]string, error) {
	wb, err := loadWorkbook(a)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(wb.Sheets))
	for i, sheet := range wb.Sheets {
		names[i] = sheet.Name
	}
	return names, nil
}

// SheetPath resolves a worksheet name to its member path: the sheet
// declaration in the workbook manifest yields a relationship id, and the
// relationship manifest maps that id to the part.
func SheetPath(a *Archive, name string) (string, error) {
	wb, err := loadWorkbook(a)
	if err != nil {
		return "", err
	}

	var declared *xlsxSheet
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			declared = &wb.Sheets[i]
			break
		}
	}
	if declared == nil {
		available := make([]string, len(wb.Sheets))
		for i, sheet := range wb.Sheets {
			available[i] = sheet.Name
		}
		return "", &SheetNotFoundError{Name: name, Available: available}
	}
	relID := declared.ID
	if relID == "" {
		return "", &RelationshipError{Sheet: name}
	}

	relsData, err := a.Part(workbookRelsPart)
	if err != nil {
		return "", err
	}
	var rels xlsxRelationships
	if err := xml.Unmarshal(relsData, &rels); err != nil {
		return "", &ArchiveError{Path: a.Path, Err: err}
	}
	for _, rel := range rels.Relationships {
		if rel.ID != relID {
			continue
		}
		if rel.Target == "" {
			break
		}
		return normalizeTarget(rel.Target), nil
	}
	return "", &RelationshipError{Sheet: name, RelID: relID}
}

// normalizeTarget rebases a relationship target onto the archive root.
// Targets are usually relative to xl/ but may be package-rooted.
func normalizeTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimLeft(target, "/")
	}
	if strings.HasPrefix(target, "xl/") {
		return target
	}
	return "xl/" + target
}

func loadWorkbook(a *Archive) (*xlsxWorkbook, error) {
	data, err := a.Part(workbookPart)
	if err != nil {
		return nil, err
	}
	var wb xlsxWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return nil, &ArchiveError{Path: a.Path, Err: err}
	}
	return &wb, nil
}

package model

import (
	"encoding/xml"
)

// LoadSharedStrings parses the shared-string table into an ordered list.
// A container without the part is valid and yields an empty table. Rich
// text items are flattened by concatenating their runs.
func LoadSharedStrings(a *Archive) ([]string, error) {
	if !a.HasPart(sharedStringsPart) {
		return nil, nil
	}
	data, err := a.Part(sharedStringsPart)
	if err != nil {
		return nil, err
	}
	var sst xlsxSST
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, &ArchiveError{Path: a.Path, Err: err}
	}
	strings := make([]string, len(sst.SI))
	for i := range sst.SI {
		strings[i] = sst.SI[i].text()
	}
	return strings, nil
}

package model

import (
	"time"

	log "github.com/sirupsen/logrus"

	"patch-dates/utils"
)

// Options describes one patch invocation.
type Options struct {
	Path      string
	Sheet     string
	Row       int
	StartDate time.Time
	EndDate   time.Time
	Output    string // empty: edit Path in place
	NoBackup  bool
	NoStyle   bool
}

// Result reports what a successful patch did.
type Result struct {
	Sheet       string
	Row         int
	Dest        string
	Backup      string // empty when no backup was made
	StartSerial int
	EndSerial   int
}

// UpdateDates runs the whole pipeline: it resolves the target worksheet,
// maps its headers, writes the two date serials (with the date-time
// display style unless suppressed) and rewrites the archive. All
// mutation happens in memory; the destination is only touched by the
// final atomic rewrite, and a failure at any earlier step leaves every
// file untouched.
func UpdateDates(opts Options) (*Result, error) {
	archive, err := OpenArchive(opts.Path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	sharedStrings, err := LoadSharedStrings(archive)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d shared strings", len(sharedStrings))

	replacements := make(map[string][]byte, 2)

	styleIndex := -1
	if !opts.NoStyle {
		if archive.HasPart(stylesPart) {
			stylesData, err := archive.Part(stylesPart)
			if err != nil {
				return nil, err
			}
			styles, err := unmarshalStyleSheet(stylesData)
			if err != nil {
				return nil, &ArchiveError{Path: opts.Path, Err: err}
			}
			styleIndex = EnsureDateStyle(styles, DateTimeFormatCode)
			log.Debugf("Resolved date style: cell format %d", styleIndex)
			if replacements[stylesPart], err = marshalPart(styles); err != nil {
				return nil, err
			}
		} else {
			log.Warnf("Workbook %q has no style table, writing bare serial values", opts.Path)
		}
	}

	sheetPath, err := SheetPath(archive, opts.Sheet)
	if err != nil {
		return nil, err
	}
	log.Debugf("Worksheet %q resolved to %q", opts.Sheet, sheetPath)

	sheetData, err := archive.Part(sheetPath)
	if err != nil {
		return nil, err
	}
	sheet, err := unmarshalWorksheet(sheetData)
	if err != nil {
		return nil, &ArchiveError{Path: opts.Path, Err: err}
	}

	headers, err := HeaderMap(sheet, sharedStrings, opts.Sheet)
	if err != nil {
		return nil, err
	}
	startColumn := headers[StartDateHeader]
	endColumn := headers[EndDateHeader]
	if startColumn == "" || endColumn == "" {
		var missing []string
		if startColumn == "" {
			missing = append(missing, StartDateHeader)
		}
		if endColumn == "" {
			missing = append(missing, EndDateHeader)
		}
		return nil, &MissingColumnError{Headers: missing}
	}

	startSerial := DateSerial(opts.StartDate)
	endSerial := DateSerial(opts.EndDate)

	row := sheet.SheetData.findOrCreateRow(opts.Row)
	for _, target := range []struct {
		column string
		serial int
	}{
		{startColumn, startSerial},
		{endColumn, endSerial},
	} {
		cell := row.findOrCreateCell(target.column, opts.Row)
		cell.setSerial(target.serial)
		if styleIndex >= 0 {
			cell.S = styleIndex
		} else {
			cell.S = 0
		}
	}

	if replacements[sheetPath], err = marshalPart(sheet); err != nil {
		return nil, err
	}

	dest := opts.Output
	if dest == "" {
		dest = opts.Path
	}

	result := &Result{
		Sheet:       opts.Sheet,
		Row:         opts.Row,
		Dest:        dest,
		StartSerial: startSerial,
		EndSerial:   endSerial,
	}

	if dest == opts.Path && !opts.NoBackup {
		backup := opts.Path + ".bak"
		if err := utils.CopyFile(opts.Path, backup); err != nil {
			return nil, err
		}
		result.Backup = backup
		log.Debugf("Backup saved to %q", backup)
	}

	if err := archive.Rewrite(dest, replacements); err != nil {
		return nil, err
	}
	return result, nil
}

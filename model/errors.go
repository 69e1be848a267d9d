package model

import (
	"fmt"
	"strings"
)

// ArchiveError - the source file is not a valid workbook container.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("%q is not a valid workbook archive: %s", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// SheetNotFoundError - the requested worksheet has no declaration in the
// workbook manifest. Available lists the names that do exist.
type SheetNotFoundError struct {
	Name      string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found, available: [%s]",
		e.Name, strings.Join(e.Available, ", "))
}

// RelationshipError - a sheet declaration lacks a resolvable target part.
type RelationshipError struct {
	Sheet string
	RelID string
}

func (e *RelationshipError) Error() string {
	if e.RelID == "" {
		return fmt.Sprintf("worksheet %q is missing a relationship id", e.Sheet)
	}
	return fmt.Sprintf("could not resolve relationship %q for worksheet %q", e.RelID, e.Sheet)
}

// MissingHeaderRowError - the worksheet has no header row to map.
type MissingHeaderRowError struct {
	Sheet string
}

func (e *MissingHeaderRowError) Error() string {
	return fmt.Sprintf("worksheet %q is missing a header row", e.Sheet)
}

// MissingColumnError - one or both required headers are absent.
type MissingColumnError struct {
	Headers []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required headers not found: %s", strings.Join(e.Headers, ", "))
}

// SerializationError - a declared replacement member was never written
// into the output archive.
type SerializationError struct {
	Parts []string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("replacement members were not applied: %s", strings.Join(e.Parts, ", "))
}

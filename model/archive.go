package model

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"patch-dates/utils"
)

// Archive is the opened workbook container. Members other than the ones
// being replaced are copied verbatim on rewrite, raw deflate stream and
// metadata included.
type Archive struct {
	Path string

	zr     *zip.ReadCloser
	parts  map[string]*zip.File
	closed bool
}

// OpenArchive opens the container read-only and indexes its members.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: err}
	}
	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}
	return &Archive{Path: path, zr: zr, parts: parts}, nil
}

// HasPart reports whether the container holds the named member.
func (a *Archive) HasPart(name string) bool {
	_, ok := a.parts[name]
	return ok
}

// Part reads the full bytes of the named member.
func (a *Archive) Part(name string) ([]byte, error) {
	f, ok := a.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %q not found in %q", name, a.Path)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Close releases the underlying file handle. Safe to call twice.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	return a.zr.Close()
}

// Rewrite produces the output archive at dest. Members named in
// replacements are stored with the given bytes; every other member is
// copied raw. The archive is written to a temporary sibling file first
// and moved into place only once complete, so dest is never left half
// written. A replacement that names no existing member fails with a
// SerializationError before the move.
func (a *Archive) Rewrite(dest string, replacements map[string][]byte) error {
	pending := make(map[string][]byte, len(replacements))
	for name, data := range replacements {
		pending[name] = data
	}

	tmpPath := utils.TempFileName(filepath.Dir(dest), "patch-dates-", ".xlsx")
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	zw := zip.NewWriter(tmp)
	for _, f := range a.zr.File {
		if data, ok := pending[f.Name]; ok {
			delete(pending, f.Name)
			if err = writeReplacement(zw, f, data); err != nil {
				break
			}
			continue
		}
		if err = zw.Copy(f); err != nil {
			break
		}
	}
	if err != nil {
		zw.Close()
		tmp.Close()
		return fmt.Errorf("failed to write %q: %w", tmpPath, err)
	}

	if len(pending) > 0 {
		zw.Close()
		tmp.Close()
		names := make([]string, 0, len(pending))
		for name := range pending {
			names = append(names, name)
		}
		return &SerializationError{Parts: names}
	}

	if err = zw.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	// The source handle is released before dest is touched so that an
	// in-place edit never reads and writes the same open file.
	if err = a.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}

// writeReplacement stores a freshly serialized member under the original
// member's name and compression method.
func writeReplacement(zw *zip.Writer, orig *zip.File, data []byte) error {
	header := &zip.FileHeader{
		Name:     orig.Name,
		Method:   orig.Method,
		Modified: orig.Modified,
	}
	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

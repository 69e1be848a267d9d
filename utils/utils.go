package utils

import (
	"encoding/hex"
	"io"
	rnd "math/rand"
	"os"
	"path/filepath"
)

// TempFileName generates a temporary filename inside dir, or inside the
// system temp directory when dir is empty.
func TempFileName(dir, prefix, suffix string) string {
	randBytes := make([]byte, 8)
	rnd.Read(randBytes)
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, prefix+hex.EncodeToString(randBytes)+suffix)
}

// CopyFile duplicates src at dst, preserving the file mode.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Package archive builds part walking abstraction on top of "archive/zip" for
// OPC packages (.docx and friends).
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// MaxPartSize limits amount of data read from a single package part.
const MaxPartSize = 256 << 20

// WalkFunc is the type of the function called for each part in the package
// visited by Walk. The name argument is a normalized part name (no leading
// slash). If an error is returned, processing stops.
type WalkFunc func(name string, file *zip.File) error

// Walk visits all files in the package which names start with prefix, in the
// order they are stored. Directory entries are skipped. Entries with path
// traversal components ("..") or absolute paths are rejected, as are
// entries which differ only by letter case since OPC part names are case
// insensitive.
func Walk(r *zip.Reader, prefix string, walkFn WalkFunc) error {
	seen := make(map[string]string, len(r.File))
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		folded := strings.ToLower(name)
		if prev, exists := seen[folded]; exists {
			return fmt.Errorf("zip entry %q: duplicate part name (see %q)", name, prev)
		}
		seen[folded] = name

		if strings.HasPrefix(name, prefix) {
			if err := walkFn(name, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkFile opens package at the given path and walks it.
func WalkFile(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()
	return Walk(&r.Reader, prefix, walkFn)
}

// ReadFile returns content of the package file refusing to read more than
// MaxPartSize bytes.
func ReadFile(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > MaxPartSize {
		return nil, fmt.Errorf("zip entry %q: too big (%d bytes)", f.Name, f.UncompressedSize64)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", f.Name, err)
	}
	if len(data) > MaxPartSize {
		return nil, fmt.Errorf("zip entry %q: too big", f.Name)
	}
	return data, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

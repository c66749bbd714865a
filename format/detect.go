package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// enough to see zip local header and first entry names
const headSize = 8192

// isDocxFile checks if file looks like word processing package. Content
// sniffing recognizes packages where [Content_Types].xml comes first, other
// zip files are accepted only with .docx extension.
func isDocxFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, fmt.Errorf("unable to read file header: %w", err)
	}
	head = head[:n]

	if filetype.Is(head, "docx") {
		return true, nil
	}
	return filetype.Is(head, "zip") && strings.EqualFold(filepath.Ext(path), ".docx"), nil
}

// isArtifact reports files never treated as input even when they look like
// documents: Word lock files and our own unfinished saves.
func isArtifact(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, "~$") || (strings.HasPrefix(base, ".") && strings.HasSuffix(base, ".tmp"))
}

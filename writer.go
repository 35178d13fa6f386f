package md2posts

import (
	"path/filepath"

	"github.com/alnah/go-md2posts/internal/fileutil"
)

// ArtifactWriter stores a named artifact and returns where it was written.
type ArtifactWriter interface {
	WriteArtifact(name string, data []byte) (string, error)
}

// Output routes per-post artifacts and the title index.
// Posts is required. A nil Index writes the index through Posts.
type Output struct {
	Posts ArtifactWriter
	Index ArtifactWriter
}

// DirWriter writes artifacts as files in Dir, replacing existing files.
// Dir must already exist.
type DirWriter struct {
	Dir string
}

// WriteArtifact writes data to Dir/name.
func (w *DirWriter) WriteArtifact(name string, data []byte) (string, error) {
	path := filepath.Join(w.Dir, name)
	if err := fileutil.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

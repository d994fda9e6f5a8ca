package texture

import (
	"os"
	"path/filepath"
)

// Index holds the texture files of one folder in listing order.
type Index struct {
	files []File
}

// BuildIndex collects the texture files among the directory entries of dir.
// Subdirectories and other extensions are skipped.
func BuildIndex(dir string, entries []os.DirEntry) *Index {
	idx := &Index{}
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsTexture(e.Name()) {
			continue
		}
		idx.files = append(idx.files, File{Path: filepath.Join(dir, e.Name()), Name: e.Name()})
	}
	return idx
}

// Files returns the indexed files in listing order.
func (idx *Index) Files() []File {
	return idx.files
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.files)
}

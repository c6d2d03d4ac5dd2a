package archive

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// IndexFileName is the per-entity manifest file name.
const IndexFileName = "highlight_index.json"

// Index is the manifest of every archive file written for one entity.
// Paths are relative to the entity root, slash-separated,
// lexicographically sorted and duplicate-free. The index is the
// authoritative source for "load all".
type Index struct {
	Paths []string `json:"paths"`
}

// Contains reports whether the index already lists the given path.
func (i Index) Contains(path string) bool {
	for _, p := range i.Paths {
		if p == path {
			return true
		}
	}
	return false
}

// LoadIndex reads the manifest under entityDir. A missing or unparseable
// manifest yields an empty index, never an error: the index is
// rebuildable by re-archiving.
func LoadIndex(fs afero.Fs, entityDir string) Index {
	data, err := afero.ReadFile(fs, filepath.Join(entityDir, IndexFileName))
	if err != nil {
		return Index{Paths: []string{}}
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return Index{Paths: []string{}}
	}
	if idx.Paths == nil {
		idx.Paths = []string{}
	}
	return idx
}

// AppendIndex adds a path to the manifest, keeping it sorted. Appending a
// path that is already present is a no-op, so repeated archive runs never
// duplicate entries.
func AppendIndex(fs afero.Fs, entityDir, path string) error {
	idx := LoadIndex(fs, entityDir)
	if idx.Contains(path) {
		return nil
	}

	idx.Paths = append(idx.Paths, path)
	sort.Strings(idx.Paths)

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := fs.MkdirAll(entityDir, 0o755); err != nil {
		return fmt.Errorf("create entity dir: %w", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(entityDir, IndexFileName), data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

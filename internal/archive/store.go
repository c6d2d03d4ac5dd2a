// Package archive persists highlight metadata to the date-partitioned
// file layout: one pretty-printed JSON array per calendar day under
// <root>/<entity>/<year>/<month>/, plus the per-entity index manifest.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/streamvault/streamvault-cli/internal/domain"
	"github.com/streamvault/streamvault-cli/internal/logger"
)

// Store reads and writes the date-partitioned highlight archive.
type Store struct {
	fs   afero.Fs
	root string
}

// NewStore creates a store rooted at the output path.
func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// EntityDir returns the on-disk directory holding one entity's archive.
func (s *Store) EntityDir(entity string) string {
	return filepath.Join(s.root, entity)
}

// Save groups the highlights by calendar day and writes one sorted JSON
// array per day, overwriting any existing file at that exact path. Every
// written path is then recorded in the index. A failed partition does not
// abort the rest: writes for the other partitions proceed, their paths
// are still indexed, and the collected failures are returned alongside
// the paths that were written.
func (s *Store) Save(entity string, highlights []domain.Highlight) ([]string, error) {
	groups := make(map[domain.PartitionKey][]domain.Highlight)
	for _, h := range highlights {
		key := domain.PartitionOf(h.CreatedAt)
		groups[key] = append(groups[key], h)
	}

	keys := make([]domain.PartitionKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	entityDir := s.EntityDir(entity)
	var written []string
	var errs []error

	for _, key := range keys {
		group := groups[key]
		domain.SortByCreatedAt(group)

		if err := s.writePartition(entityDir, key, group); err != nil {
			errs = append(errs, fmt.Errorf("partition %s: %w", key, err))
			continue
		}
		written = append(written, key.RelPath())
	}

	for _, rel := range written {
		if err := AppendIndex(s.fs, entityDir, rel); err != nil {
			errs = append(errs, fmt.Errorf("index %s: %w", rel, err))
		}
	}

	return written, errors.Join(errs...)
}

func (s *Store) writePartition(entityDir string, key domain.PartitionKey, group []domain.Highlight) error {
	dir := filepath.Join(entityDir, filepath.FromSlash(key.Dir()))
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create partition dir: %w", err)
	}

	data, err := json.MarshalIndent(group, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal highlights: %w", err)
	}

	if err := afero.WriteFile(s.fs, filepath.Join(dir, key.FileName()), data, 0o644); err != nil {
		return fmt.Errorf("write highlights: %w", err)
	}

	logger.Debug("wrote %d highlights to %s", len(group), key.RelPath())
	return nil
}

// LoadAll reads every archive file the index lists and concatenates the
// highlight records. Unreadable files are logged and skipped so one
// damaged partition never hides the rest of the archive.
func (s *Store) LoadAll(entity string) []domain.Highlight {
	entityDir := s.EntityDir(entity)
	idx := LoadIndex(s.fs, entityDir)

	var all []domain.Highlight
	for _, rel := range idx.Paths {
		full := filepath.Join(entityDir, filepath.FromSlash(rel))

		data, err := afero.ReadFile(s.fs, full)
		if err != nil {
			logger.Warn("failed to read %s: %v", rel, err)
			continue
		}

		var highlights []domain.Highlight
		if err := json.Unmarshal(data, &highlights); err != nil {
			logger.Warn("failed to parse %s: %v", rel, err)
			continue
		}
		all = append(all, highlights...)
	}

	return all
}

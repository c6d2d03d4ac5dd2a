package download

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/afero"

	"github.com/streamvault/streamvault-cli/internal/logger"
)

const (
	// StateFileName is the per-entity download state file.
	StateFileName = "downloaded_highlights.json"

	// DownloadsDirName is the per-entity downloads subdirectory.
	DownloadsDirName = "downloads"
)

// State is the set of highlight IDs known to have a local artifact.
// Once loaded it is authoritative for the run.
type State struct {
	ids map[string]struct{}
}

// NewState creates a state holding the given IDs.
func NewState(ids ...string) *State {
	s := &State{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether the ID already has a local artifact.
func (s *State) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add records an ID as downloaded.
func (s *State) Add(id string) {
	s.ids[id] = struct{}{}
}

// Len returns the number of tracked IDs.
func (s *State) Len() int {
	return len(s.ids)
}

// IDs returns the tracked IDs, sorted for stable persistence.
func (s *State) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// LoadState resolves the download state for one entity. The persisted
// state file wins; on any read or parse failure the state is rebuilt by
// scanning the entity's downloads tree for artifact filenames. The scan
// makes the tracker self-healing after interrupted runs, at the cost of
// only recognising IDs embedded by the <title>_<id>.<ext> convention.
func LoadState(fs afero.Fs, entityDir, ext string) *State {
	data, err := afero.ReadFile(fs, filepath.Join(entityDir, StateFileName))
	if err == nil {
		var ids []string
		if err := json.Unmarshal(data, &ids); err == nil {
			return NewState(ids...)
		}
		logger.Warn("unparseable %s, rebuilding from directory scan", StateFileName)
	}

	return ScanDownloads(fs, entityDir, ext)
}

// ScanDownloads reconstructs the state by walking the downloads tree and
// extracting the trailing digit group from filenames matching
// <anything>_<digits>.<ext>.
func ScanDownloads(fs afero.Fs, entityDir, ext string) *State {
	pattern := regexp.MustCompile(`_(\d+)\.` + regexp.QuoteMeta(ext) + `$`)
	state := NewState()

	root := filepath.Join(entityDir, DownloadsDirName)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if m := pattern.FindStringSubmatch(filepath.Base(path)); m != nil {
			state.Add(m[1])
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		logger.Warn("scan of %s failed: %v", root, err)
	}

	logger.Debug("scanned %s: %d downloaded highlights", root, state.Len())
	return state
}

// SaveState persists the full state, pretty-printed.
func SaveState(fs afero.Fs, entityDir string, state *State) error {
	data, err := json.MarshalIndent(state.IDs(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := fs.MkdirAll(entityDir, 0o755); err != nil {
		return fmt.Errorf("create entity dir: %w", err)
	}
	if err := afero.WriteFile(fs, filepath.Join(entityDir, StateFileName), data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

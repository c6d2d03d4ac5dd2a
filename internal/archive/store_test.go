package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/streamvault-cli/internal/domain"
)

// failingFs rejects directory creation for paths containing a marker,
// simulating a permission failure on one partition.
type failingFs struct {
	afero.Fs
	failSubstring string
}

func (f *failingFs) MkdirAll(path string, perm os.FileMode) error {
	if strings.Contains(filepath.ToSlash(path), f.failSubstring) {
		return fmt.Errorf("mkdir %s: permission denied", path)
	}
	return f.Fs.MkdirAll(path, perm)
}

func h(id string, created time.Time) domain.Highlight {
	return domain.Highlight{
		ID:        id,
		UserName:  "SomeStreamer",
		Title:     "highlight " + id,
		CreatedAt: created,
	}
}

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func readPartition(t *testing.T, fs afero.Fs, path string) []domain.Highlight {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var highlights []domain.Highlight
	require.NoError(t, json.Unmarshal(data, &highlights))
	return highlights
}

func TestStore_Save(t *testing.T) {
	t.Run("one file per distinct day", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		highlights := []domain.Highlight{
			h("1", day(2024, time.May, 3, 10)),
			h("2", day(2024, time.May, 3, 18)),
			h("3", day(2024, time.June, 1, 9)),
		}

		paths, err := store.Save("streamer", highlights)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"2024/05/highlights_2024_05_03.json",
			"2024/06/highlights_2024_06_01.json",
		}, paths)

		idx := LoadIndex(fs, "/vault/streamer")
		assert.Equal(t, paths, idx.Paths)
	})

	t.Run("entries inside a file are sorted ascending by created_at", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		highlights := []domain.Highlight{
			h("late", day(2024, time.May, 3, 22)),
			h("early", day(2024, time.May, 3, 1)),
			h("mid", day(2024, time.May, 3, 12)),
		}

		_, err := store.Save("streamer", highlights)
		require.NoError(t, err)

		got := readPartition(t, fs, "/vault/streamer/2024/05/highlights_2024_05_03.json")
		assert.Equal(t, "early", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
		assert.Equal(t, "late", got[2].ID)
	})

	t.Run("repeated save is idempotent on the index", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		highlights := []domain.Highlight{h("1", day(2024, time.May, 3, 10))}

		first, err := store.Save("streamer", highlights)
		require.NoError(t, err)
		second, err := store.Save("streamer", highlights)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		idx := LoadIndex(fs, "/vault/streamer")
		assert.Len(t, idx.Paths, 1)
	})

	t.Run("file contents are replaced, not merged", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")
		when := day(2024, time.May, 3, 10)

		_, err := store.Save("streamer", []domain.Highlight{h("1", when), h("2", when)})
		require.NoError(t, err)
		_, err = store.Save("streamer", []domain.Highlight{h("3", when)})
		require.NoError(t, err)

		got := readPartition(t, fs, "/vault/streamer/2024/05/highlights_2024_05_03.json")
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("no loss across partitions", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		highlights := []domain.Highlight{
			h("1", day(2023, time.January, 1, 1)),
			h("2", day(2023, time.January, 1, 2)),
			h("3", day(2023, time.July, 12, 3)),
			h("4", day(2024, time.February, 29, 4)),
		}

		paths, err := store.Save("streamer", highlights)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, rel := range paths {
			for _, got := range readPartition(t, fs, filepath.Join("/vault/streamer", rel)) {
				assert.False(t, seen[got.ID], "duplicate id %s", got.ID)
				seen[got.ID] = true
			}
		}
		assert.Len(t, seen, 4)
	})

	t.Run("failed partition does not lose the others", func(t *testing.T) {
		fs := &failingFs{Fs: afero.NewMemMapFs(), failSubstring: "2024/06"}

		store := NewStore(fs, "/vault")
		highlights := []domain.Highlight{
			h("ok", day(2024, time.May, 3, 10)),
			h("bad", day(2024, time.June, 1, 9)),
		}

		paths, err := store.Save("streamer", highlights)
		require.Error(t, err)

		assert.Equal(t, []string{"2024/05/highlights_2024_05_03.json"}, paths)
		idx := LoadIndex(fs, "/vault/streamer")
		assert.Equal(t, paths, idx.Paths)
	})

	t.Run("empty input writes nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		paths, err := store.Save("streamer", nil)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}

func TestStore_LoadAll(t *testing.T) {
	t.Run("reconstructs every archived highlight", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		// 7 highlights over 2 distinct days in 2 distinct months.
		highlights := []domain.Highlight{
			h("1", day(2024, time.May, 3, 1)),
			h("2", day(2024, time.May, 3, 2)),
			h("3", day(2024, time.May, 3, 3)),
			h("4", day(2024, time.June, 10, 1)),
			h("5", day(2024, time.June, 10, 2)),
			h("6", day(2024, time.June, 10, 3)),
			h("7", day(2024, time.June, 10, 4)),
		}

		paths, err := store.Save("streamer", highlights)
		require.NoError(t, err)
		require.Len(t, paths, 2)

		got := store.LoadAll("streamer")
		assert.Len(t, got, 7)

		idx := LoadIndex(fs, "/vault/streamer")
		assert.Len(t, idx.Paths, 2)
	})

	t.Run("skips unreadable files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		_, err := store.Save("streamer", []domain.Highlight{
			h("1", day(2024, time.May, 3, 1)),
			h("2", day(2024, time.June, 1, 1)),
		})
		require.NoError(t, err)

		require.NoError(t, afero.WriteFile(fs,
			"/vault/streamer/2024/05/highlights_2024_05_03.json", []byte("{broken"), 0o644))

		got := store.LoadAll("streamer")
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("empty archive loads empty", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewStore(fs, "/vault")

		assert.Empty(t, store.LoadAll("streamer"))
	})
}

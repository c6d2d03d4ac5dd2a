package domain

import (
	"fmt"
	"path"
	"time"
)

// PartitionKey is the calendar-day bucket a highlight belongs to.
// It is a deterministic function of the highlight's creation time: two
// highlights created on the same calendar day always share a key.
type PartitionKey struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// PartitionOf derives the partition key from a creation timestamp.
// The timestamp's own date components are used as-is, without timezone
// conversion.
func PartitionOf(t time.Time) PartitionKey {
	year, month, day := t.Date()
	return PartitionKey{Year: year, Month: int(month), Day: day}
}

// String renders the key as "YYYY_MM_DD".
func (k PartitionKey) String() string {
	return fmt.Sprintf("%04d_%02d_%02d", k.Year, k.Month, k.Day)
}

// Dir returns the slash-separated "YYYY/MM" directory fragment relative to
// the entity root. Slash form keeps index entries portable across
// platforms.
func (k PartitionKey) Dir() string {
	return path.Join(fmt.Sprintf("%04d", k.Year), fmt.Sprintf("%02d", k.Month))
}

// FileName returns the archive file name for this partition.
func (k PartitionKey) FileName() string {
	return fmt.Sprintf("highlights_%s.json", k)
}

// RelPath returns the archive file path for this partition relative to the
// entity root, e.g. "2024/05/highlights_2024_05_03.json".
func (k PartitionKey) RelPath() string {
	return path.Join(k.Dir(), k.FileName())
}

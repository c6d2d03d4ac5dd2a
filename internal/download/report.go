package download

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// ReportsDirName is the per-entity directory holding run reports.
const ReportsDirName = "reports"

// ItemStatus is the per-highlight outcome of one download run.
type ItemStatus string

const (
	StatusDownloaded ItemStatus = "downloaded"
	StatusSkipped    ItemStatus = "skipped"
	StatusFailed     ItemStatus = "failed"
)

// ReportItem records one highlight's outcome.
type ReportItem struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status ItemStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Report is the manifest of one download run, written next to the
// entity's archive so failed items can be retried later.
type Report struct {
	RunID      string       `json:"run_id"`
	Entity     string       `json:"entity"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Total      int          `json:"total"`
	Downloaded int          `json:"downloaded"`
	Skipped    int          `json:"skipped"`
	Failed     int          `json:"failed"`
	Items      []ReportItem `json:"items"`
}

func newReport(entity string, total int) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Entity:    entity,
		StartedAt: time.Now().UTC(),
		Total:     total,
	}
}

func (r *Report) add(item ReportItem) {
	switch item.Status {
	case StatusDownloaded:
		r.Downloaded++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
	r.Items = append(r.Items, item)
}

// write persists the report under <entityDir>/reports/run_<id>.json.
func (r *Report) write(fs afero.Fs, entityDir string) error {
	r.FinishedAt = time.Now().UTC()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	dir := filepath.Join(entityDir, ReportsDirName)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	name := fmt.Sprintf("run_%s.json", r.RunID)
	if err := afero.WriteFile(fs, filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Package download orchestrates the sequential download of highlight
// artifacts through the external TwitchDownloaderCLI tool, tracking
// which highlights already have local artifacts.
package download

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/streamvault/streamvault-cli/internal/config"
	"github.com/streamvault/streamvault-cli/internal/domain"
	"github.com/streamvault/streamvault-cli/internal/logger"
)

// Options configures an Orchestrator.
type Options struct {
	// Config holds the validated downloader settings.
	Config config.Downloader

	// PersonalToken is forwarded to the tool when personal auth is on.
	PersonalToken string

	// OutputRoot is the root directory for downloads and state.
	OutputRoot string

	// Progress receives the running progress lines. Nil discards them.
	Progress io.Writer
}

// Orchestrator downloads highlight artifacts one at a time.
type Orchestrator struct {
	fs       afero.Fs
	runner   Runner
	cfg      config.Downloader
	token    string
	root     string
	progress io.Writer
}

// New creates an Orchestrator. The caller is expected to have validated
// the downloader config already; see config.ValidateDownloader.
func New(fs afero.Fs, runner Runner, opts Options) *Orchestrator {
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	return &Orchestrator{
		fs:       fs,
		runner:   runner,
		cfg:      opts.Config,
		token:    opts.PersonalToken,
		root:     opts.OutputRoot,
		progress: progress,
	}
}

// DownloadAll downloads every highlight's artifacts sequentially in
// ascending created_at order, skipping IDs already present in the
// download state. A failed highlight is logged and the loop continues;
// only context cancellation aborts the run. The state file is persisted
// after every success and again at the end of the run, and a run report
// is written next to the entity's archive. Returns the number of
// highlights that fully succeeded.
func (o *Orchestrator) DownloadAll(ctx context.Context, entity string, highlights []domain.Highlight) (int, error) {
	sorted := slices.Clone(highlights)
	domain.SortByCreatedAt(sorted)

	entityDir := filepath.Join(o.root, entity)
	state := LoadState(o.fs, entityDir, o.cfg.Output)
	report := newReport(entity, len(sorted))

	succeeded := 0
	total := len(sorted)

	for _, h := range sorted {
		select {
		case <-ctx.Done():
			o.finish(entityDir, state, report)
			return succeeded, ctx.Err()
		default:
		}

		if state.Has(h.ID) {
			logger.Info("skipping %s (%s): already downloaded", h.Title, h.ID)
			report.add(ReportItem{ID: h.ID, Title: h.Title, Status: StatusSkipped})
			continue
		}

		if err := o.downloadOne(ctx, entityDir, h); err != nil {
			logger.Warn("failed to download %s (%s): %v", h.ID, h.Title, err)
			report.add(ReportItem{ID: h.ID, Title: h.Title, Status: StatusFailed, Error: err.Error()})
			continue
		}

		succeeded++
		state.Add(h.ID)
		if err := SaveState(o.fs, entityDir, state); err != nil {
			logger.Warn("failed to persist download state: %v", err)
		}
		report.add(ReportItem{ID: h.ID, Title: h.Title, Status: StatusDownloaded})

		fmt.Fprintf(o.progress, "Progress: %d/%d (%d%%)\n",
			succeeded, total, succeeded*100/total)
	}

	o.finish(entityDir, state, report)
	return succeeded, nil
}

func (o *Orchestrator) finish(entityDir string, state *State, report *Report) {
	if err := SaveState(o.fs, entityDir, state); err != nil {
		logger.Warn("failed to persist download state: %v", err)
	}
	if err := report.write(o.fs, entityDir); err != nil {
		logger.Warn("failed to write run report: %v", err)
	}
}

// downloadOne produces the video artifact and, when enabled, the chat
// artifact for a single highlight. Chat is only attempted once the video
// step succeeded. Artifacts live under the entity's downloads tree, the
// same tree ScanDownloads walks, so a lost state file can always be
// rebuilt from disk.
func (o *Orchestrator) downloadOne(ctx context.Context, entityDir string, h domain.Highlight) error {
	key := domain.PartitionOf(h.CreatedAt)
	dir := filepath.Join(entityDir, DownloadsDirName,
		fmt.Sprintf("%04d", key.Year), fmt.Sprintf("%02d", key.Month))

	if err := o.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	safeTitle := SanitizeTitle(h.Title)

	videoOut := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", safeTitle, h.ID, o.cfg.Output))
	videoArgs := []string{
		"videodownload",
		"--id", h.ID,
		"--output", videoOut,
		"--collision", "Rename",
	}
	if o.cfg.PersonalAuth {
		videoArgs = append(videoArgs, "--oauth", o.token)
	}
	if o.cfg.FFmpegPath != "" && o.cfg.FFmpegPath != "ffmpeg" {
		videoArgs = append(videoArgs, "--ffmpeg-path", o.cfg.FFmpegPath)
	}

	logger.Info("downloading highlight %s (%s)", h.Title, h.ID)
	if err := o.runner.Run(ctx, o.cfg.ToolPath, videoArgs...); err != nil {
		return fmt.Errorf("video download: %w", err)
	}

	if !o.cfg.DownloadChat {
		return nil
	}

	chatOut := filepath.Join(dir, fmt.Sprintf("%s_%s_chat.json", safeTitle, h.ID))
	chatArgs := []string{
		"chatdownload",
		"--id", h.ID,
		"--output", chatOut,
		"--collision", "Rename",
	}
	if o.cfg.ChatCompression != "" {
		chatArgs = append(chatArgs, "--compression", o.cfg.ChatCompression)
	}
	if o.cfg.ChatEmbedImages {
		chatArgs = append(chatArgs, "--embed-images")
	}

	logger.Info("downloading chat for %s (%s)", h.Title, h.ID)
	if err := o.runner.Run(ctx, o.cfg.ToolPath, chatArgs...); err != nil {
		return fmt.Errorf("chat download: %w", err)
	}

	return nil
}

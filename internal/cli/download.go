package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/streamvault/streamvault-cli/internal/download"
)

var (
	downloadYear  int
	downloadMonth int
	downloadFrom  string
	downloadTo    string
	downloadYes   bool
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download video and chat artifacts for archived highlights",
	Long: `Downloads the video (and optionally chat) artifact of every archived
highlight through TwitchDownloaderCLI, one at a time in chronological
order. Highlights already tracked as downloaded are skipped. Narrow the
selection with --year/--month or --from/--to.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().IntVar(&downloadYear, "year", 0, "only download highlights from this year")
	downloadCmd.Flags().IntVar(&downloadMonth, "month", 0, "only download highlights from this month (requires --year)")
	downloadCmd.Flags().StringVar(&downloadFrom, "from", "", "only download highlights created on or after this date (YYYY-MM-DD)")
	downloadCmd.Flags().StringVar(&downloadTo, "to", "", "only download highlights created on or before this date (YYYY-MM-DD)")
	downloadCmd.Flags().BoolVarP(&downloadYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, _ []string) error {
	if err := cfg.ValidateDownloader(); err != nil {
		return err
	}

	selected, err := selectHighlights(downloadYear, downloadMonth, downloadFrom, downloadTo)
	if err != nil {
		return err
	}

	estimatedGB := download.EstimateGB(selected)
	cmd.Printf("Found %d highlights\n", len(selected))
	cmd.Printf("Estimated storage needed: %.1fGB\n", estimatedGB)

	if !downloadYes {
		cmd.Println("\nWARNING: make sure you have enough storage space available")
		reader := bufio.NewReader(cmd.InOrStdin())
		ok, err := confirm(cmd, reader, "Do you want to continue with the download?")
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Download cancelled.")
			return nil
		}
	}

	orch := download.New(afero.NewOsFs(), download.NewRunner(), download.Options{
		Config:        cfg.Downloader,
		PersonalToken: cfg.PersonalAuthToken,
		OutputRoot:    cfg.OutputPath,
		Progress:      cmd.OutOrStdout(),
	})

	succeeded, err := orch.DownloadAll(cmd.Context(), cfg.Channel, selected)
	if err != nil {
		return fmt.Errorf("download run aborted after %d highlights: %w", succeeded, err)
	}

	cmd.Printf("Downloaded %d of %d highlights.\n", succeeded, len(selected))
	return nil
}

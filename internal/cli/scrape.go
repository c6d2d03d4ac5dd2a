package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/streamvault/streamvault-cli/internal/archive"
	"github.com/streamvault/streamvault-cli/internal/twitch"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch and archive the channel's highlight metadata",
	Long: `Fetches every highlight of the configured channel from the Helix API
and stores the metadata in the date-partitioned archive, updating the
per-channel index.`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client := twitch.NewClient(ctx, twitch.Options{
		ClientID: cfg.ClientID,
		Token:    cfg.AuthToken,
	})

	userID, err := client.UserID(ctx, cfg.Channel)
	if err != nil {
		return fmt.Errorf("resolve channel %s: %w", cfg.Channel, err)
	}
	cmd.Printf("Found user ID: %s\n", userID)

	highlights, err := client.Highlights(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch highlights: %w", err)
	}
	cmd.Printf("Found %d highlights\n", len(highlights))

	store := archive.NewStore(afero.NewOsFs(), cfg.OutputPath)
	paths, err := store.Save(cfg.Channel, highlights)
	if err != nil {
		return fmt.Errorf("archive highlights: %w", err)
	}

	cmd.Println("Saved highlights in the following locations:")
	for _, p := range paths {
		cmd.Printf("- %s\n", p)
	}
	return nil
}

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamvault/streamvault-cli/internal/twitch"
)

var (
	deleteYear  int
	deleteMonth int
	deleteFrom  string
	deleteTo    string
	deleteYes   bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete archived highlights from Twitch",
	Long: `Deletes the selected highlights from the channel through the Helix
API, in batches of five. Deletion is permanent and cannot be undone, so
the command asks for the channel name and a final confirmation before
issuing any request. Narrow the selection with --year/--month or
--from/--to.`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().IntVar(&deleteYear, "year", 0, "only delete highlights from this year")
	deleteCmd.Flags().IntVar(&deleteMonth, "month", 0, "only delete highlights from this month (requires --year)")
	deleteCmd.Flags().StringVar(&deleteFrom, "from", "", "only delete highlights created on or after this date (YYYY-MM-DD)")
	deleteCmd.Flags().StringVar(&deleteTo, "to", "", "only delete highlights created on or before this date (YYYY-MM-DD)")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompts")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, _ []string) error {
	selected, err := selectHighlights(deleteYear, deleteMonth, deleteFrom, deleteTo)
	if err != nil {
		return err
	}

	cmd.Printf("About to permanently delete %d highlights from channel %s.\n",
		len(selected), cfg.Channel)

	if !deleteYes {
		cmd.Println("WARNING: deleted highlights cannot be recovered.")
		reader := bufio.NewReader(cmd.InOrStdin())

		typed, err := promptLine(cmd, reader,
			fmt.Sprintf("Type the channel name (%s) to confirm: ", cfg.Channel))
		if err != nil {
			return err
		}
		if typed != cfg.Channel {
			cmd.Println("Channel name does not match. Aborting.")
			return nil
		}

		ok, err := confirm(cmd, reader, fmt.Sprintf("Delete %d highlights permanently?", len(selected)))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Deletion cancelled.")
			return nil
		}
	}

	client := twitch.NewClient(cmd.Context(), twitch.Options{
		ClientID: cfg.ClientID,
		Token:    cfg.AuthToken,
	})

	deleted, err := client.DeleteHighlights(cmd.Context(), selected, func(deleted, total int) {
		cmd.Printf("Progress: %d/%d (%d%%)\n", deleted, total, deleted*100/total)
	})
	if err != nil {
		return fmt.Errorf("deleted %d of %d highlights before failing: %w",
			deleted, len(selected), err)
	}

	cmd.Printf("Deleted %d of %d highlights.\n", deleted, len(selected))
	return nil
}

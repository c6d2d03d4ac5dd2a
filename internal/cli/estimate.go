package cli

import (
	"github.com/spf13/cobra"

	"github.com/streamvault/streamvault-cli/internal/download"
)

var (
	estimateYear  int
	estimateMonth int
	estimateFrom  string
	estimateTo    string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the storage needed to download archived highlights",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().IntVar(&estimateYear, "year", 0, "only estimate highlights from this year")
	estimateCmd.Flags().IntVar(&estimateMonth, "month", 0, "only estimate highlights from this month (requires --year)")
	estimateCmd.Flags().StringVar(&estimateFrom, "from", "", "only estimate highlights created on or after this date (YYYY-MM-DD)")
	estimateCmd.Flags().StringVar(&estimateTo, "to", "", "only estimate highlights created on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	selected, err := selectHighlights(estimateYear, estimateMonth, estimateFrom, estimateTo)
	if err != nil {
		return err
	}

	totalSecs := download.TotalSeconds(selected)

	cmd.Printf("Highlights: %d\n", len(selected))
	cmd.Printf("Total duration: %.1f hours\n", float64(totalSecs)/3600)
	cmd.Printf("Estimated storage: %.1fGB\n", download.GBForSeconds(totalSecs))
	return nil
}

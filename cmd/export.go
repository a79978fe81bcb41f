package cmd

import (
	"fmt"

	"github.com/4NDR3-S01/ExposIA/internal/parquet"
	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/spf13/cobra"
)

// exportCmd writes the grading tables to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export gradings, detail scores and feedback to Parquet",
	Long: `Write three Parquet files named after --output-file:

  <prefix>.gradings.parquet
  <prefix>.details.parquet
  <prefix>.feedback.parquet

Examples:
  grading export --output-file backup/2024-09`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		result, err := parquet.Export(rootCtx, store.Manager.GetStore(), cfg.OutputFile)
		if err != nil {
			return err
		}
		fmt.Printf("💾 Wrote %d gradings to %s\n", result.Gradings, result.GradingsFile)
		fmt.Printf("💾 Wrote %d detail scores to %s\n", result.Details, result.DetailsFile)
		fmt.Printf("💾 Wrote %d feedback entries to %s\n", result.Feedback, result.FeedbackFile)
		return nil
	},
}

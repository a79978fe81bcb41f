package cmd

import (
	"fmt"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/4NDR3-S01/ExposIA/internal/outwriter"
	"github.com/spf13/cobra"
)

// listCmd lists gradings.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gradings",
	Long: `List stored gradings ordered by id, or the best scored ones with --top.

Examples:
  grading list
  grading list --top 10 --output csv --output-file top.csv`,
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gradings, err := newService(metrics.NopObserver{}).ListGradings(rootCtx)
		if err != nil {
			return err
		}
		if top, _ := cmd.Flags().GetInt("top"); top > 0 {
			gradings = algo.RankGradings(gradings, top)
		}
		return outwriter.NewOutWriter().WriteGradings(gradings, cfg)
	},
}

// showCmd prints one grading with its details and feedback.
var showCmd = &cobra.Command{
	Use:     "show <grading-id>",
	Short:   "Show a grading with its detail scores and feedback",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		svc := newService(metrics.NopObserver{})
		agg, err := svc.GetGrading(rootCtx, id)
		if err != nil {
			return err
		}
		criteria, err := svc.ListCriteria(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteAggregate(agg, criteria, cfg)
	},
}

// deleteCmd removes a grading and everything it owns.
var deleteCmd = &cobra.Command{
	Use:     "delete <grading-id>",
	Short:   "Delete a grading with its detail scores and feedback",
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := newService(metrics.NopObserver{}).DeleteGrading(rootCtx, id); err != nil {
			return err
		}
		fmt.Printf("Grading %d deleted.\n", id)
		return nil
	},
}

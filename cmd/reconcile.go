package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/4NDR3-S01/ExposIA/internal/outwriter"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/spf13/cobra"
)

// reconcileCmd merges an AI payload into a stored grading.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <grading-id>",
	Short: "Merge an AI grading into an existing grading",
	Long: `Apply an AI grading payload to a stored grading.

Each AI detail score is averaged with the stored score of the same criterion and
rounded; the global score becomes the mean of both. Feedback entries are appended
and a grading.ai.applied notification is sent.

Applying the same payload twice averages twice.

Examples:
  # Read the payload from a file
  grading reconcile 12 --file ai.json

  # Pipe the payload in
  cat ai.json | grading reconcile 12`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		payload, err := readPayload(path)
		if err != nil {
			return err
		}

		svc := newService(metrics.NopObserver{})
		agg, err := svc.Reconcile(rootCtx, id, payload)
		if err != nil {
			return fmt.Errorf("reconciliation failed: %w", err)
		}
		criteria, err := svc.ListCriteria(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.NewOutWriter().WriteAggregate(agg, criteria, cfg)
	},
}

// readPayload decodes an AI payload from path, or from stdin when path is "-" or empty.
func readPayload(path string) (schema.AIGradingPayload, error) {
	var payload schema.AIGradingPayload
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return payload, fmt.Errorf("failed to open payload: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return payload, fmt.Errorf("failed to decode payload: %w", err)
	}
	return payload, nil
}

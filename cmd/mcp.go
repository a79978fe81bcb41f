package cmd

import (
	"github.com/4NDR3-S01/ExposIA/internal/mcp"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the grading MCP server",
	Long:    `Launch an MCP server on stdio that lets AI agents read gradings and apply AI gradings via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, newService(metrics.NopObserver{}))
	},
}

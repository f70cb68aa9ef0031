package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbreslin/cadence/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server drives a headless timer and exposes tools for controlling it
and reading the session journal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Starting MCP server...")
		fmt.Println("   The server will communicate via stdio")
		fmt.Println("   Press Ctrl+C to stop")

		ctx := setupSignalHandler()

		eng := newEngine(ctx)

		server := mcp.NewServer(eng, sessionLog)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

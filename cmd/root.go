package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the fathom-mcp application
var rootCmd = &cobra.Command{
	Use:   "fathom-mcp",
	Short: "MCP server and exporter for Fathom meeting data",
	Long: `fathom-mcp exposes the Fathom meeting-intelligence API as Model Context
Protocol (MCP) tools for AI assistants: meetings, transcripts, summaries,
action items, teams and webhooks, plus markdown export of meetings to disk.

It can run as:
  - An MCP server over stdio or streamable HTTP (default)
  - A standalone CLI exporter`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "fathom-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}

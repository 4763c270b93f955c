// Package cmd implements the command-line interface for fathom-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing Fathom tools for AI assistants
//   - export: Export meetings to markdown files from the command line
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd

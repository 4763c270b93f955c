// Package meeting_tools registers the MCP tools for listing, inspecting and
// exporting Fathom meetings.
//
// All tools in this package are read-only against the upstream API. The
// export tools write markdown files to the local export directory and are
// therefore only registered when write tools are enabled. Results are
// rendered via the markdown package so output is deterministic for
// identical upstream data.
package meeting_tools

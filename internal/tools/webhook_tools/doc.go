// Package webhook_tools registers the MCP tools for managing Fathom
// webhooks.
//
// Listing is always available. Create and delete mutate upstream state and
// are only registered when the server runs with write tools enabled. The
// webhook secret appears exactly once, in the create response; it can never
// be fetched again, so the create tool surfaces it prominently.
package webhook_tools

// Package team_tools registers the MCP tools for listing Fathom teams and
// team members. Both tools are read-only and follow pagination to return the
// complete result set as JSON.
package team_tools

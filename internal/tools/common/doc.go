// Package common provides helpers shared by the tool registration packages:
// argument extraction from MCP requests and handler wrappers that record
// metrics and structured logs for every tool invocation.
package common

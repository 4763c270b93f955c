// Package instrumentation provides OpenTelemetry-based metrics for the MCP
// server.
//
// Metrics cover MCP tool invocations, Fathom API operations, and meeting
// exports. The default exporter is Prometheus; the metrics are exposed by a
// dedicated HTTP server (see internal/server) so operational data never
// mixes with MCP traffic. Instrumentation can be disabled entirely via
// INSTRUMENTATION_ENABLED=false, in which case all recorders are no-ops.
package instrumentation

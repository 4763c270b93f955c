// Package server holds the shared context for the MCP server and its HTTP
// side-cars.
//
// ServerContext carries the single Fathom API client (one immutable
// credential per process), the exporter, and optional instrumentation.
// HealthChecker provides /healthz and /readyz endpoints for the HTTP
// transport, and MetricsServer exposes Prometheus metrics on a dedicated
// port so operational data never mixes with MCP traffic.
package server

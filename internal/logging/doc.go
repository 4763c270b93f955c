// Package logging provides slog helpers for consistent structured logging.
//
// It defines the canonical attribute keys used across the codebase and small
// helpers for building attributes, so log lines stay queryable regardless of
// which package emitted them. Email addresses are anonymized before logging
// to avoid leaking PII into log storage.
package logging

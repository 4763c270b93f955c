package server

import (
	"context"
	"sync"
	"time"

	"github.com/recapd/fathom-mcp/internal/config"
	"github.com/recapd/fathom-mcp/internal/export"
	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/instrumentation"
)

// ServerContext holds the context for the MCP server. The Fathom client is
// created once at startup from the process configuration; no request handler
// performs ambient credential lookups.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Config
	client   *fathom.Client
	exporter *export.Exporter
	metrics  *instrumentation.Metrics
	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context from the loaded
// configuration.
func NewServerContext(ctx context.Context, cfg *config.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		cfg:    cfg,
	}

	// The recorder resolves the metrics recorder per call, so API operations
	// are counted as soon as instrumentation is attached via SetMetrics.
	client, err := fathom.NewClient(cfg.APIKey,
		fathom.WithBaseURL(cfg.BaseURL),
		fathom.WithOperationRecorder(sc.recordAPIOperation),
	)
	if err != nil {
		cancel()
		return nil, err
	}
	sc.client = client

	exporter, err := export.NewExporter(cfg.ExportDir)
	if err != nil {
		cancel()
		return nil, err
	}
	sc.exporter = exporter

	return sc, nil
}

func (sc *ServerContext) recordAPIOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordAPIOperation(ctx, operation, status, duration)
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the process configuration.
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// Client returns the Fathom API client.
func (sc *ServerContext) Client() *fathom.Client {
	return sc.client
}

// Exporter returns the markdown file exporter.
func (sc *ServerContext) Exporter() *export.Exporter {
	return sc.exporter
}

// Metrics returns the metrics recorder, or nil if not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used for tool instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}

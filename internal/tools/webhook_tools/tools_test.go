package webhook_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/fathom-mcp/internal/config"
	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(), &config.Config{
		APIKey:    "test-key",
		BaseURL:   fathom.DefaultBaseURL,
		ExportDir: t.TempDir(),
	})
	require.NoError(t, err)
	return sc
}

func TestRegisterWebhookTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.0")
	require.NoError(t, RegisterWebhookTools(s, newTestServerContext(t), false))
}

func TestRegisterWebhookToolsReadOnly(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.0")
	require.NoError(t, RegisterWebhookTools(s, newTestServerContext(t), true))
}

func TestValidTriggers(t *testing.T) {
	for _, trigger := range []string{
		fathom.TriggerMyMeetings,
		fathom.TriggerMyTeamMeetings,
		fathom.TriggerSharedExternalMeetings,
		fathom.TriggerAllMeetings,
	} {
		assert.True(t, validTriggers[trigger], trigger)
	}
	assert.False(t, validTriggers["everything"])
}

package team_tools

import (
	"context"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/require"

	"github.com/recapd/fathom-mcp/internal/config"
	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/server"
)

func TestRegisterTeamTools(t *testing.T) {
	sc, err := server.NewServerContext(context.Background(), &config.Config{
		APIKey:    "test-key",
		BaseURL:   fathom.DefaultBaseURL,
		ExportDir: t.TempDir(),
	})
	require.NoError(t, err)

	s := mcpserver.NewMCPServer("test", "0.0.0")
	require.NoError(t, RegisterTeamTools(s, sc))
}

package team_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/server"
	"github.com/recapd/fathom-mcp/internal/tools/common"
)

// RegisterTeamTools registers all team-related tools with the MCP server.
func RegisterTeamTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTeamsTool := mcp.NewTool("fathom_list_teams",
		mcp.WithDescription("List all Fathom teams"),
	)

	s.AddTool(listTeamsTool, common.InstrumentedToolHandler("fathom_list_teams", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			teams, err := sc.Client().ListAllTeams(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list teams: %v", err)), nil
			}

			result, _ := json.MarshalIndent(teams, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	listTeamMembersTool := mcp.NewTool("fathom_list_team_members",
		mcp.WithDescription("List Fathom team members, optionally restricted to a single team"),
		mcp.WithString("team",
			mcp.Description("Team name to filter by"),
		),
	)

	s.AddTool(listTeamMembersTool, common.InstrumentedToolHandler("fathom_list_team_members", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			filters := fathom.TeamMemberFilters{
				Team: common.StringArg(args, "team", ""),
			}

			members, err := sc.Client().ListAllTeamMembers(ctx, filters)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list team members: %v", err)), nil
			}

			result, _ := json.MarshalIndent(members, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}

package webhook_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/server"
	"github.com/recapd/fathom-mcp/internal/tools/common"
)

var validTriggers = map[string]bool{
	fathom.TriggerMyMeetings:             true,
	fathom.TriggerMyTeamMeetings:         true,
	fathom.TriggerSharedExternalMeetings: true,
	fathom.TriggerAllMeetings:            true,
}

// RegisterWebhookTools registers all webhook-related tools with the MCP
// server. Create and delete are skipped in read-only mode.
func RegisterWebhookTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	listWebhooksTool := mcp.NewTool("fathom_list_webhooks",
		mcp.WithDescription("List all registered webhooks (secrets are never included)"),
	)

	s.AddTool(listWebhooksTool, common.InstrumentedToolHandler("fathom_list_webhooks", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			webhooks, err := sc.Client().ListAllWebhooks(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list webhooks: %v", err)), nil
			}

			result, _ := json.MarshalIndent(webhooks, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	if readOnly {
		return nil
	}

	createWebhookTool := mcp.NewTool("fathom_create_webhook",
		mcp.WithDescription("Create a webhook. The response contains the signing secret, shown exactly once; store it immediately."),
		mcp.WithString("destination_url",
			mcp.Required(),
			mcp.Description("URL that will receive webhook deliveries"),
		),
		mcp.WithBoolean("include_transcript",
			mcp.Description("Include the transcript in webhook payloads"),
		),
		mcp.WithBoolean("include_summary",
			mcp.Description("Include the summary in webhook payloads"),
		),
		mcp.WithBoolean("include_action_items",
			mcp.Description("Include action items in webhook payloads"),
		),
		mcp.WithBoolean("include_crm_matches",
			mcp.Description("Include CRM matches in webhook payloads"),
		),
		mcp.WithString("triggered_for",
			mcp.Description("Trigger tag or array of tags: 'my_meetings', 'my_team_meetings', 'shared_external_meetings', 'all_meetings'"),
		),
	)

	s.AddTool(createWebhookTool, common.InstrumentedToolHandler("fathom_create_webhook", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			destinationURL := common.StringArg(args, "destination_url", "")
			if destinationURL == "" {
				return mcp.NewToolResultError("destination_url is required"), nil
			}

			triggers, err := common.StringSliceArg(args, "triggered_for")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			for _, trigger := range triggers {
				if !validTriggers[trigger] {
					return mcp.NewToolResultError(fmt.Sprintf("unknown triggered_for tag: %s", trigger)), nil
				}
			}

			webhook, err := sc.Client().CreateWebhook(ctx, fathom.WebhookRequest{
				DestinationURL:     destinationURL,
				IncludeTranscript:  common.BoolArg(args, "include_transcript", false),
				IncludeSummary:     common.BoolArg(args, "include_summary", false),
				IncludeActionItems: common.BoolArg(args, "include_action_items", false),
				IncludeCRMMatches:  common.BoolArg(args, "include_crm_matches", false),
				TriggeredFor:       triggers,
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create webhook: %v", err)), nil
			}

			var out strings.Builder
			fmt.Fprintf(&out, "Webhook %s created for %s.\n\n", webhook.ID, webhook.DestinationURL)
			if webhook.Secret != "" {
				fmt.Fprintf(&out, "Signing secret (shown only once, store it now): %s\n\n", webhook.Secret)
			}
			details, _ := json.MarshalIndent(webhook, "", "  ")
			out.Write(details)

			return mcp.NewToolResultText(out.String()), nil
		}))

	deleteWebhookTool := mcp.NewTool("fathom_delete_webhook",
		mcp.WithDescription("Delete a webhook by ID"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The ID of the webhook to delete"),
		),
	)

	s.AddTool(deleteWebhookTool, common.InstrumentedToolHandler("fathom_delete_webhook", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			id := common.StringArg(args, "id", "")
			if id == "" {
				return mcp.NewToolResultError("id is required"), nil
			}

			if err := sc.Client().DeleteWebhook(ctx, id); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete webhook: %v", err)), nil
			}

			return mcp.NewToolResultText(fmt.Sprintf("Webhook %s deleted successfully", id)), nil
		}))

	return nil
}

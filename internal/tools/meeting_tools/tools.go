package meeting_tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/markdown"
	"github.com/recapd/fathom-mcp/internal/server"
	"github.com/recapd/fathom-mcp/internal/tools/common"
)

// filtersFromArgs builds meeting list filters from tool arguments. Absent
// arguments leave the corresponding filter unset, so they are omitted from
// the upstream request entirely.
func filtersFromArgs(args map[string]interface{}) (fathom.MeetingFilters, error) {
	filters := fathom.MeetingFilters{
		IncludeTranscript:  common.BoolArg(args, "include_transcript", false),
		IncludeSummary:     common.BoolArg(args, "include_summary", false),
		IncludeActionItems: common.BoolArg(args, "include_action_items", false),
		IncludeCRMMatches:  common.BoolArg(args, "include_crm_matches", false),

		CreatedAfter:  common.StringArg(args, "created_after", ""),
		CreatedBefore: common.StringArg(args, "created_before", ""),

		CalendarInviteesDomainsType: common.StringArg(args, "calendar_invitees_domains_type", ""),
	}

	var err error
	if filters.RecordedBy, err = common.StringSliceArg(args, "recorded_by"); err != nil {
		return filters, err
	}
	if filters.Teams, err = common.StringSliceArg(args, "teams"); err != nil {
		return filters, err
	}
	if filters.CalendarInvitees, err = common.StringSliceArg(args, "calendar_invitees"); err != nil {
		return filters, err
	}
	if filters.CalendarInviteesDomains, err = common.StringSliceArg(args, "calendar_invitees_domains"); err != nil {
		return filters, err
	}

	return filters, nil
}

// withFilterOptions appends the shared meeting filter parameters to a tool
// definition.
func withFilterOptions(opts ...mcp.ToolOption) []mcp.ToolOption {
	return append(opts,
		mcp.WithBoolean("include_transcript",
			mcp.Description("Include full transcripts in the upstream response"),
		),
		mcp.WithBoolean("include_summary",
			mcp.Description("Include generated summaries in the upstream response"),
		),
		mcp.WithBoolean("include_action_items",
			mcp.Description("Include action items in the upstream response"),
		),
		mcp.WithBoolean("include_crm_matches",
			mcp.Description("Include CRM matches in the upstream response"),
		),
		mcp.WithString("created_after",
			mcp.Description("Only meetings created after this ISO-8601 timestamp"),
		),
		mcp.WithString("created_before",
			mcp.Description("Only meetings created before this ISO-8601 timestamp"),
		),
		mcp.WithString("recorded_by",
			mcp.Description("Recorder email or array of emails to filter by"),
		),
		mcp.WithString("teams",
			mcp.Description("Team name or array of team names to filter by"),
		),
		mcp.WithString("calendar_invitees",
			mcp.Description("Invitee email or array of emails to filter by"),
		),
		mcp.WithString("calendar_invitees_domains",
			mcp.Description("Invitee email domain or array of domains to filter by"),
		),
		mcp.WithString("calendar_invitees_domains_type",
			mcp.Description("Participant domain mix: 'all', 'only_internal' or 'one_or_more_external'"),
		),
	)
}

// findMeeting scans the meeting list for a recording ID with the detail
// include flags honoured, defaulting all of them to true.
func findMeeting(ctx context.Context, sc *server.ServerContext, args map[string]interface{}, recordingID int64) (*fathom.Meeting, error) {
	filters := fathom.MeetingFilters{
		IncludeTranscript:  common.BoolArg(args, "include_transcript", true),
		IncludeSummary:     common.BoolArg(args, "include_summary", true),
		IncludeActionItems: common.BoolArg(args, "include_action_items", true),
		IncludeCRMMatches:  common.BoolArg(args, "include_crm_matches", true),
	}
	return sc.Client().FindMeeting(ctx, recordingID, filters)
}

func notFoundResult(recordingID int64) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Meeting with recording ID %d not found", recordingID))
}

// RegisterMeetingTools registers all meeting-related tools with the MCP
// server. The export tools write to the local filesystem and are skipped in
// read-only mode.
func RegisterMeetingTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerListTools(s, sc); err != nil {
		return fmt.Errorf("failed to register meeting list tools: %w", err)
	}

	if err := registerDetailTools(s, sc); err != nil {
		return fmt.Errorf("failed to register meeting detail tools: %w", err)
	}

	if !readOnly {
		if err := registerExportTools(s, sc); err != nil {
			return fmt.Errorf("failed to register export tools: %w", err)
		}
	}

	return nil
}

// registerListTools registers the list and search tools.
func registerListTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listMeetingsTool := mcp.NewTool("fathom_list_meetings",
		withFilterOptions(
			mcp.WithDescription("List Fathom meetings as a markdown table, following pagination to return all matches"),
		)...,
	)

	s.AddTool(listMeetingsTool, common.InstrumentedToolHandler("fathom_list_meetings", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			filters, err := filtersFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meetings, err := sc.Client().ListAllMeetings(ctx, filters)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list meetings: %v", err)), nil
			}

			return mcp.NewToolResultText(markdown.MeetingList(meetings)), nil
		}))

	searchMeetingsTool := mcp.NewTool("fathom_search_meetings",
		withFilterOptions(
			mcp.WithDescription("Search meetings by title substring (case-insensitive) and render matches as a markdown table"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Substring to match against meeting titles"),
			),
		)...,
	)

	s.AddTool(searchMeetingsTool, common.InstrumentedToolHandler("fathom_search_meetings", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			query := common.StringArg(args, "query", "")
			if query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			filters, err := filtersFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meetings, err := sc.Client().ListAllMeetings(ctx, filters)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list meetings: %v", err)), nil
			}

			needle := strings.ToLower(query)
			var matches []fathom.Meeting
			for _, m := range meetings {
				if strings.Contains(strings.ToLower(markdown.MeetingTitle(m)), needle) {
					matches = append(matches, m)
				}
			}

			return mcp.NewToolResultText(markdown.MeetingList(matches)), nil
		}))

	return nil
}

// registerDetailTools registers the single-meeting tools.
func registerDetailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getMeetingTool := mcp.NewTool("fathom_get_meeting",
		mcp.WithDescription("Get a single meeting as a full markdown document, including transcript, summary, action items and CRM matches"),
		mcp.WithString("recording_id",
			mcp.Required(),
			mcp.Description("The recording ID of the meeting"),
		),
		mcp.WithBoolean("include_transcript",
			mcp.Description("Include the transcript section (default: true)"),
		),
		mcp.WithBoolean("include_summary",
			mcp.Description("Include the summary section (default: true)"),
		),
		mcp.WithBoolean("include_action_items",
			mcp.Description("Include the action items section (default: true)"),
		),
		mcp.WithBoolean("include_crm_matches",
			mcp.Description("Include the CRM matches section (default: true)"),
		),
	)

	s.AddTool(getMeetingTool, common.InstrumentedToolHandler("fathom_get_meeting", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			recordingID, err := common.Int64Arg(args, "recording_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := findMeeting(ctx, sc, args, recordingID)
			if err != nil {
				if errors.Is(err, fathom.ErrNotFound) {
					return notFoundResult(recordingID), nil
				}
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get meeting: %v", err)), nil
			}

			return mcp.NewToolResultText(markdown.Meeting(*meeting, time.Now())), nil
		}))

	getTranscriptTool := mcp.NewTool("fathom_get_transcript",
		mcp.WithDescription("Get the transcript of a meeting, grouped by consecutive speaker"),
		mcp.WithString("recording_id",
			mcp.Required(),
			mcp.Description("The recording ID of the meeting"),
		),
	)

	s.AddTool(getTranscriptTool, common.InstrumentedToolHandler("fathom_get_transcript", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			recordingID, err := common.Int64Arg(args, "recording_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			transcript, err := sc.Client().GetTranscript(ctx, recordingID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get transcript: %v", err)), nil
			}

			return mcp.NewToolResultText(markdown.Transcript(transcript)), nil
		}))

	getSummaryTool := mcp.NewTool("fathom_get_summary",
		mcp.WithDescription("Get the generated summary of a meeting"),
		mcp.WithString("recording_id",
			mcp.Required(),
			mcp.Description("The recording ID of the meeting"),
		),
	)

	s.AddTool(getSummaryTool, common.InstrumentedToolHandler("fathom_get_summary", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			recordingID, err := common.Int64Arg(args, "recording_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.Client().FindMeeting(ctx, recordingID, fathom.MeetingFilters{IncludeSummary: true})
			if err != nil {
				if errors.Is(err, fathom.ErrNotFound) {
					return notFoundResult(recordingID), nil
				}
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get summary: %v", err)), nil
			}

			return mcp.NewToolResultText(markdown.Summary(*meeting)), nil
		}))

	getActionItemsTool := mcp.NewTool("fathom_get_action_items",
		mcp.WithDescription("Get the action items of a meeting as a markdown checklist"),
		mcp.WithString("recording_id",
			mcp.Required(),
			mcp.Description("The recording ID of the meeting"),
		),
	)

	s.AddTool(getActionItemsTool, common.InstrumentedToolHandler("fathom_get_action_items", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			recordingID, err := common.Int64Arg(args, "recording_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.Client().FindMeeting(ctx, recordingID, fathom.MeetingFilters{IncludeActionItems: true})
			if err != nil {
				if errors.Is(err, fathom.ErrNotFound) {
					return notFoundResult(recordingID), nil
				}
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get action items: %v", err)), nil
			}

			return mcp.NewToolResultText(markdown.ActionItems(meeting.ActionItems)), nil
		}))

	return nil
}

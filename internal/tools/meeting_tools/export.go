package meeting_tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/recapd/fathom-mcp/internal/fathom"
	"github.com/recapd/fathom-mcp/internal/logging"
	"github.com/recapd/fathom-mcp/internal/server"
	"github.com/recapd/fathom-mcp/internal/tools/common"
)

// registerExportTools registers the tools that write meeting documents to the
// local export directory.
func registerExportTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	exportMeetingTool := mcp.NewTool("fathom_export_meeting",
		mcp.WithDescription("Export a single meeting to a markdown file in the export directory"),
		mcp.WithString("recording_id",
			mcp.Required(),
			mcp.Description("The recording ID of the meeting to export"),
		),
	)

	s.AddTool(exportMeetingTool, common.InstrumentedToolHandler("fathom_export_meeting", sc,
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

			path, err := sc.Exporter().WriteMeeting(*meeting, time.Now())
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to export meeting: %v", err)), nil
			}

			if metrics := sc.Metrics(); metrics != nil {
				metrics.RecordMeetingsExported(ctx, 1)
			}
			slog.Info("exported meeting",
				logging.Recording(recordingID),
				logging.Path(path),
				logging.User(meeting.RecordedBy.Email),
			)

			return mcp.NewToolResultText(fmt.Sprintf("Meeting exported to %s", path)), nil
		}))

	exportAllTool := mcp.NewTool("fathom_export_all_meetings",
		withFilterOptions(
			mcp.WithDescription("Export all meetings matching the filters to markdown files, one file per meeting"),
		)...,
	)

	s.AddTool(exportAllTool, common.InstrumentedToolHandler("fathom_export_all_meetings", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()

			filters, err := filtersFromArgs(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			// Bulk export always fetches the full detail payload so every
			// document carries its transcript, summary and action items.
			filters.IncludeTranscript = true
			filters.IncludeSummary = true
			filters.IncludeActionItems = true
			filters.IncludeCRMMatches = true

			meetings, err := sc.Client().ListAllMeetings(ctx, filters)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list meetings: %v", err)), nil
			}

			written, err := sc.Exporter().ExportAll(ctx, meetings, time.Now())
			if metrics := sc.Metrics(); metrics != nil && written > 0 {
				metrics.RecordMeetingsExported(ctx, written)
			}
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf(
					"Export failed after writing %d of %d meetings: %v", written, len(meetings), err)), nil
			}

			slog.Info("exported meetings",
				logging.Count(written),
				logging.Path(sc.Exporter().Dir()),
			)

			return mcp.NewToolResultText(fmt.Sprintf(
				"Exported %d meetings to %s", written, sc.Exporter().Dir())), nil
		}))

	return nil
}

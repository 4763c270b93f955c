package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/recapd/fathom-mcp/internal/config"
	"github.com/recapd/fathom-mcp/internal/export"
	"github.com/recapd/fathom-mcp/internal/fathom"
)

func newExportCmd() *cobra.Command {
	var (
		outputDir      string
		createdAfter   string
		createdBefore  string
		recordedBy     []string
		teams          []string
		invitees       []string
		inviteeDomains []string
		domainsType    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export meetings to markdown files",
		Long: `Fetch all meetings matching the filters and write one markdown file per
meeting into the output directory. Each document includes the transcript,
summary, action items and CRM matches when present.

Requires FATHOM_API_KEY to be set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if outputDir == "" {
				outputDir = cfg.ExportDir
			}

			client, err := fathom.NewClient(cfg.APIKey, fathom.WithBaseURL(cfg.BaseURL))
			if err != nil {
				return err
			}

			exporter, err := export.NewExporter(outputDir)
			if err != nil {
				return err
			}

			filters := fathom.MeetingFilters{
				IncludeTranscript:           true,
				IncludeSummary:              true,
				IncludeActionItems:          true,
				IncludeCRMMatches:           true,
				CreatedAfter:                createdAfter,
				CreatedBefore:               createdBefore,
				RecordedBy:                  recordedBy,
				Teams:                       teams,
				CalendarInvitees:            invitees,
				CalendarInviteesDomains:     inviteeDomains,
				CalendarInviteesDomainsType: domainsType,
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			meetings, err := client.ListAllMeetings(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list meetings: %w", err)
			}

			written, err := exporter.ExportAll(ctx, meetings, time.Now())
			if err != nil {
				return fmt.Errorf("export failed after writing %d of %d meetings: %w", written, len(meetings), err)
			}

			fmt.Fprintf(os.Stdout, "Exported %d meetings to %s\n", written, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: FATHOM_EXPORT_DIR or ./fathom-exports)")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "Only meetings created after this ISO-8601 timestamp")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "Only meetings created before this ISO-8601 timestamp")
	cmd.Flags().StringSliceVar(&recordedBy, "recorded-by", nil, "Recorder emails to filter by (repeatable)")
	cmd.Flags().StringSliceVar(&teams, "teams", nil, "Team names to filter by (repeatable)")
	cmd.Flags().StringSliceVar(&invitees, "calendar-invitees", nil, "Invitee emails to filter by (repeatable)")
	cmd.Flags().StringSliceVar(&inviteeDomains, "calendar-invitees-domains", nil, "Invitee email domains to filter by (repeatable)")
	cmd.Flags().StringVar(&domainsType, "domains-type", "", "Participant domain mix: all, only_internal or one_or_more_external")

	return cmd
}

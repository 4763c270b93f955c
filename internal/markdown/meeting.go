package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

// Fixed placeholder strings for empty collections. Rendering never produces
// an empty section or a bare heading.
const (
	NoParticipantsPlaceholder = "_No participants recorded._"
	NoActionItemsPlaceholder  = "_No action items._"
	NoSummaryPlaceholder      = "_No summary available._"
	NoMeetingsPlaceholder     = "_No meetings found._"
)

// Participants renders one line per calendar invitee in input order,
// annotating external participants.
func Participants(invitees []fathom.CalendarInvitee) string {
	if len(invitees) == 0 {
		return NoParticipantsPlaceholder
	}

	var md strings.Builder
	for i, invitee := range invitees {
		if i > 0 {
			md.WriteString("\n")
		}
		md.WriteString("- ")
		md.WriteString(invitee.Name)
		if invitee.Email != "" {
			fmt.Fprintf(&md, " (%s)", invitee.Email)
		}
		if invitee.IsExternal {
			md.WriteString(" _(external)_")
		}
	}
	return md.String()
}

// ActionItems renders a checklist, one line per item in input order.
// Completed items render as [x], open items as [ ]. Assignee and timestamp
// are appended parenthetically only when present.
func ActionItems(items []fathom.ActionItem) string {
	if len(items) == 0 {
		return NoActionItemsPlaceholder
	}

	var md strings.Builder
	for i, item := range items {
		if i > 0 {
			md.WriteString("\n")
		}
		if item.Completed {
			md.WriteString("- [x] ")
		} else {
			md.WriteString("- [ ] ")
		}
		md.WriteString(item.Description)

		var details []string
		if item.Assignee != nil && item.Assignee.Name != "" {
			details = append(details, item.Assignee.Name)
		}
		if item.RecordingTimestamp != "" {
			details = append(details, item.RecordingTimestamp)
		}
		if len(details) > 0 {
			fmt.Fprintf(&md, " (%s)", strings.Join(details, ", "))
		}
	}
	return md.String()
}

// CRMMatches renders the contact, company and deal sub-lists of a CRM match
// bundle. Empty sub-lists are skipped entirely.
func CRMMatches(matches fathom.CRMMatches) string {
	var sections []string

	if len(matches.Contacts) > 0 {
		var md strings.Builder
		md.WriteString("### Contacts\n")
		for _, contact := range matches.Contacts {
			fmt.Fprintf(&md, "\n- [%s](%s)", contact.Name, contact.URL)
		}
		sections = append(sections, md.String())
	}

	if len(matches.Companies) > 0 {
		var md strings.Builder
		md.WriteString("### Companies\n")
		for _, company := range matches.Companies {
			fmt.Fprintf(&md, "\n- [%s](%s)", company.Name, company.URL)
		}
		sections = append(sections, md.String())
	}

	if len(matches.Deals) > 0 {
		var md strings.Builder
		md.WriteString("### Deals\n")
		for _, deal := range matches.Deals {
			fmt.Fprintf(&md, "\n- [%s](%s) — $%.2f", deal.Name, deal.URL, deal.Amount)
		}
		sections = append(sections, md.String())
	}

	return strings.Join(sections, "\n\n")
}

// Meeting assembles the full markdown document for a meeting: title heading,
// metadata table, participants, summary (if present), action items (if
// non-empty), CRM matches (if present), transcript (always, with its own
// placeholder), and an export timestamp footer. Conditionally omitted
// sections leave no residual heading.
func Meeting(m fathom.Meeting, exportedAt time.Time) string {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\n", MeetingTitle(m))

	md.WriteString("| | |\n")
	md.WriteString("|---|---|\n")
	fmt.Fprintf(&md, "| **Date** | %s |\n", m.RecordingStartTime.UTC().Format("2006-01-02"))
	fmt.Fprintf(&md, "| **Duration** | %s |\n", Duration(m.RecordingStartTime, m.RecordingEndTime))
	fmt.Fprintf(&md, "| **Recorded By** | %s |\n", recordedBy(m.RecordedBy))
	fmt.Fprintf(&md, "| **Recording ID** | %d |\n", m.RecordingID)
	fmt.Fprintf(&md, "| **Meeting URL** | %s |\n", m.URL)
	fmt.Fprintf(&md, "| **Share URL** | %s |\n", m.ShareURL)
	md.WriteString("\n")

	md.WriteString("## Participants\n\n")
	md.WriteString(Participants(m.CalendarInvitees))
	md.WriteString("\n")

	if m.DefaultSummary != nil {
		md.WriteString("\n## Summary\n\n")
		md.WriteString(strings.TrimSpace(m.DefaultSummary.MarkdownFormatted))
		md.WriteString("\n")
	}

	if len(m.ActionItems) > 0 {
		md.WriteString("\n## Action Items\n\n")
		md.WriteString(ActionItems(m.ActionItems))
		md.WriteString("\n")
	}

	if m.CRMMatches != nil {
		if section := CRMMatches(*m.CRMMatches); section != "" {
			md.WriteString("\n## CRM Matches\n\n")
			md.WriteString(section)
			md.WriteString("\n")
		}
	}

	md.WriteString("\n## Transcript\n\n")
	md.WriteString(Transcript(m.Transcript))
	md.WriteString("\n")

	fmt.Fprintf(&md, "\n---\n\n_Exported %s_\n", exportedAt.UTC().Format(time.RFC3339))

	return md.String()
}

// MeetingList renders a table of meetings, one row per input meeting in
// input order.
func MeetingList(meetings []fathom.Meeting) string {
	if len(meetings) == 0 {
		return NoMeetingsPlaceholder
	}

	var md strings.Builder
	md.WriteString("| Title | Date | Duration | Recorded By | Participants | Recording ID |\n")
	md.WriteString("|-------|------|----------|-------------|--------------|--------------|\n")
	for _, m := range meetings {
		fmt.Fprintf(&md, "| %s | %s | %s | %s | %d | %d |\n",
			escapePipes(MeetingTitle(m)),
			m.RecordingStartTime.UTC().Format("2006-01-02"),
			Duration(m.RecordingStartTime, m.RecordingEndTime),
			escapePipes(m.RecordedBy.Name),
			len(m.CalendarInvitees),
			m.RecordingID,
		)
	}
	return strings.TrimRight(md.String(), "\n")
}

// Summary renders a meeting's default summary or the fixed placeholder.
func Summary(m fathom.Meeting) string {
	if m.DefaultSummary == nil || strings.TrimSpace(m.DefaultSummary.MarkdownFormatted) == "" {
		return NoSummaryPlaceholder
	}
	return strings.TrimSpace(m.DefaultSummary.MarkdownFormatted)
}

func recordedBy(u fathom.User) string {
	if u.Email != "" {
		return fmt.Sprintf("%s (%s)", u.Name, u.Email)
	}
	return u.Name
}

// escapePipes keeps table cells intact when titles contain pipe characters.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

var exportedAt = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func TestParticipants(t *testing.T) {
	t.Run("empty renders placeholder", func(t *testing.T) {
		assert.Equal(t, NoParticipantsPlaceholder, Participants(nil))
	})

	t.Run("external annotation", func(t *testing.T) {
		out := Participants([]fathom.CalendarInvitee{
			{Name: "Alice", Email: "alice@acme.com", IsExternal: false},
			{Name: "Carol", Email: "carol@client.io", IsExternal: true},
		})
		assert.Contains(t, out, "- Alice (alice@acme.com)")
		assert.Contains(t, out, "- Carol (carol@client.io) _(external)_")
		assert.Equal(t, 1, strings.Count(out, "_(external)_"))
	})
}

func TestActionItems(t *testing.T) {
	t.Run("empty renders placeholder", func(t *testing.T) {
		assert.Equal(t, NoActionItemsPlaceholder, ActionItems(nil))
	})

	t.Run("status checkboxes", func(t *testing.T) {
		out := ActionItems([]fathom.ActionItem{
			{Description: "Send follow-up email", Completed: true},
			{Description: "Draft proposal", Completed: false},
		})
		assert.Contains(t, out, "- [x] Send follow-up email")
		assert.Contains(t, out, "- [ ] Draft proposal")
	})

	t.Run("assignee and timestamp only when present", func(t *testing.T) {
		out := ActionItems([]fathom.ActionItem{
			{
				Description:        "Schedule demo",
				Assignee:           &fathom.Assignee{Name: "Bob"},
				RecordingTimestamp: "00:12:34",
			},
			{Description: "No details"},
		})
		assert.Contains(t, out, "- [ ] Schedule demo (Bob, 00:12:34)")
		assert.True(t, strings.HasSuffix(out, "- [ ] No details"))
		assert.NotContains(t, out, "No details (")
	})
}

func TestCRMMatchesSkipsEmptySublists(t *testing.T) {
	out := CRMMatches(fathom.CRMMatches{
		Deals: []fathom.CRMDeal{{Name: "Acme renewal", URL: "https://crm/d/1", Amount: 25000}},
	})

	assert.Contains(t, out, "### Deals")
	assert.Contains(t, out, "[Acme renewal](https://crm/d/1)")
	assert.Contains(t, out, "$25000.00")
	assert.NotContains(t, out, "### Contacts")
	assert.NotContains(t, out, "### Companies")
}

func TestMeetingDocumentEndToEnd(t *testing.T) {
	m := fathom.Meeting{
		Title:              "Q4 Review",
		RecordingID:        123,
		URL:                "https://fathom.video/calls/123",
		ShareURL:           "https://fathom.video/share/abc",
		RecordingStartTime: time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC),
		RecordingEndTime:   time.Date(2024, 12, 1, 15, 45, 32, 0, time.UTC),
		RecordedBy:         fathom.User{Name: "Alice", Email: "alice@acme.com"},
		CalendarInvitees: []fathom.CalendarInvitee{
			{Name: "Alice", Email: "alice@acme.com", IsExternal: false},
			{Name: "Carol", Email: "carol@client.io", IsExternal: true},
		},
		ActionItems: []fathom.ActionItem{
			{Description: "Send pricing deck", Completed: false},
		},
		Transcript: []fathom.TranscriptItem{
			{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Welcome to the review", Timestamp: "00:00:02"},
			{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Let's look at the numbers", Timestamp: "00:00:08"},
		},
	}

	doc := Meeting(m, exportedAt)

	assert.True(t, strings.HasPrefix(doc, "# Q4 Review\n"))
	assert.Contains(t, doc, "**Duration** | 45m 32s")
	assert.Contains(t, doc, "| **Date** | 2024-12-01 |")
	assert.Contains(t, doc, "| **Recording ID** | 123 |")
	assert.Equal(t, 1, strings.Count(doc, "_(external)_"))
	assert.Equal(t, 1, strings.Count(doc, "- [ ]"))
	assert.Equal(t, 1, strings.Count(doc, "**Alice** _["), "single speaker yields one transcript header")
	assert.Contains(t, doc, "_Exported 2025-01-15T09:30:00Z_")

	// Absent optional data leaves no residual headings.
	assert.NotContains(t, doc, "## Summary")
	assert.NotContains(t, doc, "## CRM Matches")
}

func TestMeetingDocumentIncludesOptionalSections(t *testing.T) {
	m := fathom.Meeting{
		Title:              "Deal sync",
		RecordingID:        9,
		RecordingStartTime: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		RecordingEndTime:   time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC),
		DefaultSummary:     &fathom.Summary{MarkdownFormatted: "We agreed on next steps."},
		CRMMatches: &fathom.CRMMatches{
			Contacts: []fathom.CRMContact{{Name: "Dana", URL: "https://crm/c/7"}},
		},
	}

	doc := Meeting(m, exportedAt)

	assert.Contains(t, doc, "## Summary\n\nWe agreed on next steps.")
	assert.Contains(t, doc, "## CRM Matches")
	assert.Contains(t, doc, "[Dana](https://crm/c/7)")
	assert.Contains(t, doc, NoTranscriptPlaceholder, "transcript section always present")
	assert.Contains(t, doc, NoParticipantsPlaceholder)
}

func TestMeetingDocumentZeroDuration(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	m := fathom.Meeting{RecordingID: 1, RecordingStartTime: start, RecordingEndTime: start}

	doc := Meeting(m, exportedAt)
	assert.Contains(t, doc, "| **Duration** | 0s |")
}

func TestMeetingList(t *testing.T) {
	t.Run("empty renders placeholder", func(t *testing.T) {
		assert.Equal(t, NoMeetingsPlaceholder, MeetingList(nil))
	})

	t.Run("one row per meeting in input order", func(t *testing.T) {
		meetings := []fathom.Meeting{
			{
				Title:              "Second | pipe",
				RecordingID:        2,
				RecordingStartTime: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
				RecordingEndTime:   time.Date(2024, 3, 2, 9, 20, 0, 0, time.UTC),
				RecordedBy:         fathom.User{Name: "Bob"},
			},
			{
				Title:              "First",
				RecordingID:        1,
				RecordingStartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
				RecordingEndTime:   time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC),
				RecordedBy:         fathom.User{Name: "Alice"},
				CalendarInvitees:   []fathom.CalendarInvitee{{Name: "Alice"}, {Name: "Carol"}},
			},
		}

		out := MeetingList(meetings)
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 4, "header, separator, two rows")
		assert.Contains(t, lines[2], "Second \\| pipe")
		assert.Contains(t, lines[2], "| 20m 0s |")
		assert.Contains(t, lines[3], "| First |")
		assert.Contains(t, lines[3], "| 1h 5m |")
		assert.Contains(t, lines[3], "| 2 |")
	})
}

func TestSummaryPlaceholder(t *testing.T) {
	assert.Equal(t, NoSummaryPlaceholder, Summary(fathom.Meeting{}))
	assert.Equal(t, "Notes.", Summary(fathom.Meeting{DefaultSummary: &fathom.Summary{MarkdownFormatted: "Notes.\n"}}))
}

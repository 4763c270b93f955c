package markdown

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

var filenameStart = time.Date(2024, 12, 1, 15, 0, 0, 0, time.UTC)

func TestMeetingTitleFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		meeting  fathom.Meeting
		expected string
	}{
		{
			name:     "title wins",
			meeting:  fathom.Meeting{Title: "Q4 Review", MeetingTitle: "Calendar Title", RecordingID: 7},
			expected: "Q4 Review",
		},
		{
			name:     "meeting_title fallback",
			meeting:  fathom.Meeting{MeetingTitle: "Calendar Title", RecordingID: 7},
			expected: "Calendar Title",
		},
		{
			name:     "synthesized fallback",
			meeting:  fathom.Meeting{RecordingID: 7},
			expected: "Meeting_7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeetingTitle(tt.meeting))
		})
	}
}

func TestFilenameSanitization(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "plain title",
			title:    "Weekly Sync",
			expected: "Weekly_Sync_2024-12-01.md",
		},
		{
			name:     "illegal characters stripped",
			title:    `Q4/Review: "Plans" <draft>?`,
			expected: "Q4Review_Plans_draft_2024-12-01.md",
		},
		{
			name:     "repeated whitespace collapsed",
			title:    "Budget   planning    call",
			expected: "Budget_planning_call_2024-12-01.md",
		},
		{
			name:     "edge underscores trimmed",
			title:    "  spaced out  ",
			expected: "spaced_out_2024-12-01.md",
		},
		{
			name:     "only illegal characters falls back to recording id",
			title:    `///\\\`,
			expected: "Meeting_42_2024-12-01.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fathom.Meeting{Title: tt.title, RecordingID: 42, RecordingStartTime: filenameStart}
			assert.Equal(t, tt.expected, Filename(m))
		})
	}
}

func TestFilenameTruncation(t *testing.T) {
	m := fathom.Meeting{
		Title:              strings.Repeat("a", 250),
		RecordingID:        1,
		RecordingStartTime: filenameStart,
	}

	name := Filename(m)
	assert.Equal(t, strings.Repeat("a", 100)+"_2024-12-01.md", name)
}

func TestFilenameTruncationKeepsValidUTF8(t *testing.T) {
	m := fathom.Meeting{
		// Three-byte runes straddle the length bound; the cut must land on a
		// rune boundary, not a raw byte offset.
		Title:              strings.Repeat("会", 60),
		RecordingID:        2,
		RecordingStartTime: filenameStart,
	}

	name := Filename(m)
	assert.True(t, utf8.ValidString(name))
	assert.Equal(t, strings.Repeat("会", 33)+"_2024-12-01.md", name)
}

func TestFilenameDifferentDatesDiffer(t *testing.T) {
	a := fathom.Meeting{Title: "Standup", RecordingID: 1, RecordingStartTime: filenameStart}
	b := a
	b.RecordingStartTime = filenameStart.AddDate(0, 0, 1)

	assert.NotEqual(t, Filename(a), Filename(b))
}

func TestFilenameDeterministic(t *testing.T) {
	m := fathom.Meeting{Title: "Q4 / Review: next steps", RecordingID: 5, RecordingStartTime: filenameStart}
	assert.Equal(t, Filename(m), Filename(m))
}

func TestFilenameUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	m := fathom.Meeting{
		Title: "Late call",
		// 01:00 on Dec 2 local time is still Dec 1 in UTC.
		RecordingStartTime: time.Date(2024, 12, 2, 1, 0, 0, 0, loc),
	}
	assert.Equal(t, "Late_call_2024-12-01.md", Filename(m))
}

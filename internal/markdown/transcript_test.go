package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

func TestTranscriptEmptyRendersPlaceholder(t *testing.T) {
	assert.Equal(t, NoTranscriptPlaceholder, Transcript(nil))
	assert.Equal(t, NoTranscriptPlaceholder, Transcript([]fathom.TranscriptItem{}))
}

func TestTranscriptGroupsConsecutiveSpeakers(t *testing.T) {
	items := []fathom.TranscriptItem{
		{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Hello everyone", Timestamp: "00:00:01"},
		{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Let's get started", Timestamp: "00:00:05"},
		{Speaker: fathom.Speaker{DisplayName: "Bob"}, Text: "Sounds good", Timestamp: "00:00:09"},
	}

	out := Transcript(items)

	// One header for Alice's grouped lines, one for Bob.
	assert.Equal(t, 1, strings.Count(out, "**Alice**"))
	assert.Equal(t, 1, strings.Count(out, "**Bob**"))
	assert.Contains(t, out, "**Alice** _[00:00:01]_")
	assert.Contains(t, out, "> Hello everyone")
	assert.Contains(t, out, "> Let's get started")
	assert.Contains(t, out, "**Bob** _[00:00:09]_")
	assert.Contains(t, out, "> Sounds good")

	// Alice's lines come before Bob's header.
	assert.Less(t, strings.Index(out, "> Let's get started"), strings.Index(out, "**Bob**"))
}

func TestTranscriptSpeakerChangeEmitsNewHeader(t *testing.T) {
	items := []fathom.TranscriptItem{
		{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "First", Timestamp: "00:00:01"},
		{Speaker: fathom.Speaker{DisplayName: "Bob"}, Text: "Second", Timestamp: "00:00:02"},
		{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Third", Timestamp: "00:00:03"},
	}

	out := Transcript(items)

	// Alice returns after Bob, so she gets a second header.
	assert.Equal(t, 2, strings.Count(out, "**Alice**"))
	assert.Equal(t, 1, strings.Count(out, "**Bob**"))
}

func TestTranscriptTimestampDisplayedVerbatim(t *testing.T) {
	items := []fathom.TranscriptItem{
		{Speaker: fathom.Speaker{DisplayName: "Alice"}, Text: "Hi", Timestamp: "01:23:45"},
	}

	out := Transcript(items)
	assert.Contains(t, out, "_[01:23:45]_")
}

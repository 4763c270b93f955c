package markdown

import (
	"strings"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

// NoTranscriptPlaceholder is rendered when a transcript is empty or absent.
const NoTranscriptPlaceholder = "_No transcript available._"

// Transcript renders transcript items in order. A speaker header line is
// emitted only when the speaker differs from the immediately preceding
// entry, so consecutive utterances by the same speaker are grouped under one
// header. Every utterance is rendered as a blockquote line.
func Transcript(items []fathom.TranscriptItem) string {
	if len(items) == 0 {
		return NoTranscriptPlaceholder
	}

	var md strings.Builder
	var prevSpeaker string

	for i, item := range items {
		speaker := item.Speaker.DisplayName
		if i == 0 || speaker != prevSpeaker {
			if i > 0 {
				md.WriteString("\n")
			}
			md.WriteString("**")
			md.WriteString(speaker)
			md.WriteString("** _[")
			md.WriteString(item.Timestamp)
			md.WriteString("]_\n\n")
			prevSpeaker = speaker
		}
		md.WriteString("> ")
		md.WriteString(item.Text)
		md.WriteString("\n")
	}

	return strings.TrimRight(md.String(), "\n")
}

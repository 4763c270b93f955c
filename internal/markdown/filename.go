package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/recapd/fathom-mcp/internal/fathom"
)

// maxFilenameTitleLength bounds the sanitized title component of a filename.
const maxFilenameTitleLength = 100

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
	underscoreRuns       = regexp.MustCompile(`_+`)
)

// MeetingTitle resolves the display title for a meeting: the user-assigned
// title, then the calendar event title, then a synthesized fallback from the
// recording ID.
func MeetingTitle(m fathom.Meeting) string {
	if m.Title != "" {
		return m.Title
	}
	if m.MeetingTitle != "" {
		return m.MeetingTitle
	}
	return fmt.Sprintf("Meeting_%d", m.RecordingID)
}

// Filename produces a deterministic, filesystem-safe filename for a meeting:
// the sanitized title, an underscore, the UTC calendar date of the recording
// start, and a ".md" extension.
func Filename(m fathom.Meeting) string {
	title := sanitizeTitle(MeetingTitle(m))
	if title == "" {
		// A title made entirely of illegal characters sanitizes to nothing;
		// fall back to the synthesized form, which always survives.
		title = fmt.Sprintf("Meeting_%d", m.RecordingID)
	}
	date := m.RecordingStartTime.UTC().Format("2006-01-02")
	return title + "_" + date + ".md"
}

// sanitizeTitle strips characters illegal in filenames, collapses whitespace
// runs to single underscores, collapses repeated underscores, trims edge
// underscores, and truncates to the length bound.
func sanitizeTitle(title string) string {
	s := illegalFilenameChars.ReplaceAllString(title, "")
	s = whitespaceRuns.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxFilenameTitleLength {
		// Back up to a rune boundary so the cut never leaves invalid UTF-8.
		cut := maxFilenameTitleLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
		s = strings.TrimRight(s, "_")
	}
	return s
}

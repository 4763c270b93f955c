package fathom

import (
	"fmt"
	"time"
)

// Meeting represents a single recorded meeting as returned by the Fathom API.
// Transcript, DefaultSummary, ActionItems and CRMMatches are only populated
// when the corresponding include flag was set on the list request.
type Meeting struct {
	// Title is the user-assigned title. May be empty; see MeetingTitle in the
	// markdown package for the fallback chain.
	Title string `json:"title,omitempty"`

	// MeetingTitle is the title from the originating calendar event.
	MeetingTitle string `json:"meeting_title,omitempty"`

	// RecordingID is the stable external identifier for the recording.
	RecordingID int64 `json:"recording_id"`

	// URL is the meeting page URL.
	URL string `json:"url,omitempty"`

	// ShareURL is the public share link for the recording.
	ShareURL string `json:"share_url,omitempty"`

	CreatedAt          time.Time `json:"created_at"`
	RecordingStartTime time.Time `json:"recording_start_time"`
	RecordingEndTime   time.Time `json:"recording_end_time"`

	// CalendarInviteesDomainsType classifies the participant domain mix:
	// "only_internal" or "one_or_more_external".
	CalendarInviteesDomainsType string `json:"calendar_invitees_domains_type,omitempty"`

	Transcript       []TranscriptItem  `json:"transcript,omitempty"`
	DefaultSummary   *Summary          `json:"default_summary,omitempty"`
	ActionItems      []ActionItem      `json:"action_items,omitempty"`
	CalendarInvitees []CalendarInvitee `json:"calendar_invitees,omitempty"`
	RecordedBy       User              `json:"recorded_by"`
	CRMMatches       *CRMMatches       `json:"crm_matches,omitempty"`
}

// TranscriptItem is a single utterance in a meeting transcript. Items are
// ordered and never reordered. Timestamp is an opaque HH:MM:SS string and is
// only ever displayed verbatim.
type TranscriptItem struct {
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
}

// Speaker identifies who said a transcript line.
type Speaker struct {
	DisplayName string `json:"display_name"`

	// MatchedCalendarInviteeEmail is set when Fathom matched the speaker to a
	// calendar invitee.
	MatchedCalendarInviteeEmail string `json:"matched_calendar_invitee_email,omitempty"`
}

// Summary is a generated meeting summary.
type Summary struct {
	TemplateName      string `json:"template_name,omitempty"`
	MarkdownFormatted string `json:"markdown_formatted_summary"`
}

// ActionItem is a follow-up captured during a meeting.
type ActionItem struct {
	Description          string    `json:"description"`
	Completed            bool      `json:"completed"`
	UserGenerated        bool      `json:"user_generated"`
	RecordingTimestamp   string    `json:"recording_timestamp,omitempty"`
	RecordingPlaybackURL string    `json:"recording_playback_url,omitempty"`
	Assignee             *Assignee `json:"assignee,omitempty"`
}

// Assignee is the person an action item is assigned to.
type Assignee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Team  string `json:"team,omitempty"`
}

// CalendarInvitee is a meeting participant as recorded on the originating
// calendar event.
type CalendarInvitee struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsExternal  bool   `json:"is_external"`
	EmailDomain string `json:"email_domain,omitempty"`
}

// User is the Fathom user that recorded a meeting.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Team  string `json:"team,omitempty"`
}

// CRMMatches bundles CRM records the upstream service linked to a meeting.
type CRMMatches struct {
	Contacts  []CRMContact `json:"contacts,omitempty"`
	Companies []CRMCompany `json:"companies,omitempty"`
	Deals     []CRMDeal    `json:"deals,omitempty"`
}

// CRMContact is a matched CRM contact record.
type CRMContact struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CRMCompany is a matched CRM company record.
type CRMCompany struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CRMDeal is a matched CRM deal record.
type CRMDeal struct {
	Name   string  `json:"name"`
	URL    string  `json:"url,omitempty"`
	Amount float64 `json:"amount,omitempty"`
}

// Team is a Fathom team.
type Team struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMember is a member of a Fathom team.
type TeamMember struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Webhook is a registered webhook destination. Secret is only populated on
// the create response; it can never be fetched again.
type Webhook struct {
	ID                 string    `json:"id"`
	DestinationURL     string    `json:"destination_url"`
	Secret             string    `json:"secret,omitempty"`
	IncludeTranscript  bool      `json:"include_transcript"`
	IncludeSummary     bool      `json:"include_summary"`
	IncludeActionItems bool      `json:"include_action_items"`
	IncludeCRMMatches  bool      `json:"include_crm_matches"`
	TriggeredFor       []string  `json:"triggered_for,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// MeetingsPage is one page of a paginated meeting list. A nil or empty
// NextCursor is the sole "no more pages" signal.
type MeetingsPage struct {
	Items      []Meeting `json:"items"`
	NextCursor *string   `json:"next_cursor"`
}

// TeamsPage is one page of a paginated team list.
type TeamsPage struct {
	Items      []Team  `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

// TeamMembersPage is one page of a paginated team member list.
type TeamMembersPage struct {
	Items      []TeamMember `json:"items"`
	NextCursor *string      `json:"next_cursor"`
}

// WebhooksPage is one page of a paginated webhook list.
type WebhooksPage struct {
	Items      []Webhook `json:"items"`
	NextCursor *string   `json:"next_cursor"`
}

// TranscriptPage is the envelope returned by the single-transcript endpoint.
type TranscriptPage struct {
	Items []TranscriptItem `json:"items"`
}

// APIError represents a non-2xx response from the Fathom API. It carries the
// numeric status code and the raw response body so callers can surface the
// upstream failure verbatim.
type APIError struct {
	// Op is the operation that failed (e.g., "listMeetings", "createWebhook")
	Op string

	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Body is the raw response body text
	Body string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("fathom %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("fathom %s: status %d", e.Op, e.StatusCode)
}

package fathom

import (
	"net/url"
)

// Domain-mix filter values accepted by calendar_invitees_domains_type.
const (
	DomainsTypeAll               = "all"
	DomainsTypeOnlyInternal      = "only_internal"
	DomainsTypeOneOrMoreExternal = "one_or_more_external"
)

// Webhook trigger tags accepted by triggered_for.
const (
	TriggerMyMeetings             = "my_meetings"
	TriggerMyTeamMeetings         = "my_team_meetings"
	TriggerSharedExternalMeetings = "shared_external_meetings"
	TriggerAllMeetings            = "all_meetings"
)

// MeetingFilters holds the recognized options for the meeting list endpoint.
// Zero values are omitted from the request entirely: a false boolean never
// produces a "false" parameter, and empty strings/slices produce nothing.
type MeetingFilters struct {
	IncludeTranscript  bool
	IncludeSummary     bool
	IncludeActionItems bool
	IncludeCRMMatches  bool

	// CreatedAfter and CreatedBefore are opaque ISO-8601 strings passed
	// through unvalidated.
	CreatedAfter  string
	CreatedBefore string

	RecordedBy              []string
	Teams                   []string
	CalendarInvitees        []string
	CalendarInviteesDomains []string

	// CalendarInviteesDomainsType is one of the DomainsType constants.
	CalendarInviteesDomainsType string

	// Cursor is the opaque pagination token.
	Cursor string
}

// Values maps the filters to query parameters. Boolean flags append the
// literal "true" only when set; slice filters append one repeated parameter
// per element, preserving input order.
func (f MeetingFilters) Values() url.Values {
	v := url.Values{}

	addFlag(v, "include_transcript", f.IncludeTranscript)
	addFlag(v, "include_summary", f.IncludeSummary)
	addFlag(v, "include_action_items", f.IncludeActionItems)
	addFlag(v, "include_crm_matches", f.IncludeCRMMatches)

	addString(v, "created_after", f.CreatedAfter)
	addString(v, "created_before", f.CreatedBefore)

	addStrings(v, "recorded_by[]", f.RecordedBy)
	addStrings(v, "teams[]", f.Teams)
	addStrings(v, "calendar_invitees[]", f.CalendarInvitees)
	addStrings(v, "calendar_invitees_domains[]", f.CalendarInviteesDomains)

	addString(v, "calendar_invitees_domains_type", f.CalendarInviteesDomainsType)
	addString(v, "cursor", f.Cursor)

	return v
}

// withCursor returns a copy of the filters with the pagination cursor set.
func (f MeetingFilters) withCursor(cursor string) MeetingFilters {
	f.Cursor = cursor
	return f
}

// TeamMemberFilters holds the recognized options for the team member list
// endpoint.
type TeamMemberFilters struct {
	// Team restricts results to members of the named team.
	Team string

	// Cursor is the opaque pagination token.
	Cursor string
}

// Values maps the filters to query parameters.
func (f TeamMemberFilters) Values() url.Values {
	v := url.Values{}
	addString(v, "team", f.Team)
	addString(v, "cursor", f.Cursor)
	return v
}

// WebhookRequest holds the options for webhook creation. Unset booleans are
// omitted from the JSON body rather than sent as false.
type WebhookRequest struct {
	DestinationURL     string   `json:"destination_url"`
	IncludeTranscript  bool     `json:"include_transcript,omitempty"`
	IncludeSummary     bool     `json:"include_summary,omitempty"`
	IncludeActionItems bool     `json:"include_action_items,omitempty"`
	IncludeCRMMatches  bool     `json:"include_crm_matches,omitempty"`
	TriggeredFor       []string `json:"triggered_for,omitempty"`
}

func addFlag(v url.Values, key string, set bool) {
	if set {
		v.Add(key, "true")
	}
}

func addString(v url.Values, key, value string) {
	if value != "" {
		v.Add(key, value)
	}
}

func addStrings(v url.Values, key string, values []string) {
	for _, value := range values {
		v.Add(key, value)
	}
}

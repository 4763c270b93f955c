// Package fathom provides a client for the Fathom meeting-intelligence API.
//
// This package offers access to:
//   - Meeting listings with filter options and optional transcript, summary,
//     action item and CRM match payloads
//   - Single-recording transcript fetches
//   - Team and team member listings
//   - Webhook registration and removal
//
// List endpoints are paginated via an opaque next_cursor token. Every
// paginated operation has a fetch-all variant that follows the cursor
// sequentially and concatenates items in response order; an absent or empty
// cursor is the sole end-of-pages signal.
//
// Authentication:
// Requests carry a static API key in the X-Api-Key header. The key is
// supplied once at client construction and never looked up ambiently.
//
// Example usage:
//
//	client, err := fathom.NewClient(os.Getenv("FATHOM_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meetings, err := client.ListAllMeetings(ctx, fathom.MeetingFilters{
//	    IncludeSummary: true,
//	    CreatedAfter:   "2024-01-01T00:00:00Z",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures from the upstream API surface as *APIError values carrying the
// HTTP status code and raw response body. Lookups by recording ID that
// succeed upstream but match nothing return ErrNotFound instead.
package fathom

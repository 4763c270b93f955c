package fathom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/recapd/fathom-mcp/internal/logging"
)

// DefaultBaseURL is the base path of the Fathom external API.
const DefaultBaseURL = "https://api.fathom.ai/external/v1"

// ErrNotFound is returned when a lookup by recording ID succeeds against the
// upstream but no matching record exists. It is distinguishable from an
// *APIError, which indicates the upstream call itself failed.
var ErrNotFound = errors.New("recording not found")

// OperationRecorder observes the outcome of a single API operation. The
// status is "success" or "error". Recorders must be safe for concurrent use.
type OperationRecorder func(ctx context.Context, operation, status string, duration time.Duration)

// Client provides access to the Fathom meeting-intelligence API. It holds
// only an immutable credential and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	recorder   OperationRecorder
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used for tests and self-hosted
// proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithOperationRecorder installs a recorder that is called once per API
// operation with its name, outcome and duration.
func WithOperationRecorder(recorder OperationRecorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

// NewClient creates a new Fathom API client with the given API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do issues a single request and decodes the JSON response into out,
// reporting the outcome to the operation recorder when one is installed.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	err := c.doRequest(ctx, op, method, path, query, body, out)
	duration := time.Since(start)

	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
	}
	if c.recorder != nil {
		c.recorder(ctx, op, status, duration)
	}
	slog.Debug("fathom api call",
		logging.Operation(op),
		logging.Status(status),
		slog.Duration(logging.KeyDuration, duration),
	)

	return err
}

// doRequest performs the HTTP round trip. A 204 response yields success
// without touching out. Any other non-2xx status surfaces as an *APIError
// carrying the status code and raw body.
func (c *Client) doRequest(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("fathom %s: failed to encode request body: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("fathom %s: failed to build request: %w", op, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fathom %s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fathom %s: failed to decode response: %w", op, err)
	}

	return nil
}

// ListMeetings returns one page of meetings matching the filters.
func (c *Client) ListMeetings(ctx context.Context, filters MeetingFilters) (*MeetingsPage, error) {
	var page MeetingsPage
	if err := c.do(ctx, "listMeetings", http.MethodGet, "/meetings", filters.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllMeetings follows the pagination cursor and returns all meetings
// matching the filters, preserving relative order across page boundaries.
// Pages are fetched strictly sequentially with one in-flight request.
func (c *Client) ListAllMeetings(ctx context.Context, filters MeetingFilters) ([]Meeting, error) {
	var meetings []Meeting

	filters.Cursor = ""
	for {
		page, err := c.ListMeetings(ctx, filters)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, page.Items...)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return meetings, nil
		}
		filters = filters.withCursor(*page.NextCursor)
	}
}

// FindMeeting pages through the meeting list until it finds the given
// recording ID, stopping at the first match. It returns ErrNotFound when
// every page has been scanned without a match.
func (c *Client) FindMeeting(ctx context.Context, recordingID int64, filters MeetingFilters) (*Meeting, error) {
	filters.Cursor = ""
	for {
		page, err := c.ListMeetings(ctx, filters)
		if err != nil {
			return nil, err
		}
		for i := range page.Items {
			if page.Items[i].RecordingID == recordingID {
				return &page.Items[i], nil
			}
		}

		if page.NextCursor == nil || *page.NextCursor == "" {
			return nil, fmt.Errorf("recording %d: %w", recordingID, ErrNotFound)
		}
		filters = filters.withCursor(*page.NextCursor)
	}
}

// GetTranscript fetches the transcript for a single recording. A missing
// recording surfaces as the upstream HTTP failure; the client does not
// special-case 404.
func (c *Client) GetTranscript(ctx context.Context, recordingID int64) ([]TranscriptItem, error) {
	var page TranscriptPage
	path := fmt.Sprintf("/transcripts/%d", recordingID)
	if err := c.do(ctx, "getTranscript", http.MethodGet, path, nil, nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ListTeams returns one page of teams.
func (c *Client) ListTeams(ctx context.Context, cursor string) (*TeamsPage, error) {
	query := url.Values{}
	addString(query, "cursor", cursor)

	var page TeamsPage
	if err := c.do(ctx, "listTeams", http.MethodGet, "/teams", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllTeams follows the pagination cursor and returns all teams.
func (c *Client) ListAllTeams(ctx context.Context) ([]Team, error) {
	var teams []Team

	cursor := ""
	for {
		page, err := c.ListTeams(ctx, cursor)
		if err != nil {
			return nil, err
		}
		teams = append(teams, page.Items...)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return teams, nil
		}
		cursor = *page.NextCursor
	}
}

// ListTeamMembers returns one page of team members matching the filters.
func (c *Client) ListTeamMembers(ctx context.Context, filters TeamMemberFilters) (*TeamMembersPage, error) {
	var page TeamMembersPage
	if err := c.do(ctx, "listTeamMembers", http.MethodGet, "/team_members", filters.Values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllTeamMembers follows the pagination cursor and returns all team
// members matching the filters.
func (c *Client) ListAllTeamMembers(ctx context.Context, filters TeamMemberFilters) ([]TeamMember, error) {
	var members []TeamMember

	filters.Cursor = ""
	for {
		page, err := c.ListTeamMembers(ctx, filters)
		if err != nil {
			return nil, err
		}
		members = append(members, page.Items...)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return members, nil
		}
		filters.Cursor = *page.NextCursor
	}
}

// ListWebhooks returns one page of registered webhooks. Secrets are never
// included; they are revealed once at creation only.
func (c *Client) ListWebhooks(ctx context.Context, cursor string) (*WebhooksPage, error) {
	query := url.Values{}
	addString(query, "cursor", cursor)

	var page WebhooksPage
	if err := c.do(ctx, "listWebhooks", http.MethodGet, "/webhooks", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllWebhooks follows the pagination cursor and returns all webhooks.
func (c *Client) ListAllWebhooks(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook

	cursor := ""
	for {
		page, err := c.ListWebhooks(ctx, cursor)
		if err != nil {
			return nil, err
		}
		webhooks = append(webhooks, page.Items...)

		if page.NextCursor == nil || *page.NextCursor == "" {
			return webhooks, nil
		}
		cursor = *page.NextCursor
	}
}

// CreateWebhook registers a new webhook and returns the full created record,
// including the one-time secret.
func (c *Client) CreateWebhook(ctx context.Context, req WebhookRequest) (*Webhook, error) {
	if req.DestinationURL == "" {
		return nil, fmt.Errorf("destination URL cannot be empty")
	}

	var webhook Webhook
	if err := c.do(ctx, "createWebhook", http.MethodPost, "/webhooks", nil, req, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// DeleteWebhook removes a webhook by ID. Any 2xx response, including 204, is
// treated as success.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("webhook id cannot be empty")
	}

	path := "/webhooks/" + url.PathEscape(id)
	return c.do(ctx, "deleteWebhook", http.MethodDelete, path, nil, nil, nil)
}

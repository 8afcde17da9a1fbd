// Package meetings implements the single Webex meetings API operation the
// tool needs: creating one scheduled meeting.
package meetings

import (
	"context"
	"fmt"
	"time"

	"github.com/collabops/webexctl/internal/webex"
)

// ScheduledTypeMeeting is the scheduledType value for ordinary scheduled
// meetings, as opposed to webinars or personal room meetings.
const ScheduledTypeMeeting = "meeting"

// Meeting carries the meetings API fields this tool writes on create and
// reads back from the response. Start and End are ISO 8601 timestamps with
// an offset (e.g. "2026-09-01T10:00:00+02:00"); they are passed through to
// the API verbatim.
type Meeting struct {
	ID                          string     `json:"id,omitempty"`
	Title                       string     `json:"title,omitempty"`
	Password                    string     `json:"password,omitempty"`
	PhoneAndVideoSystemPassword string     `json:"phoneAndVideoSystemPassword,omitempty"`
	Start                       string     `json:"start,omitempty"`
	End                         string     `json:"end,omitempty"`
	Timezone                    string     `json:"timezone,omitempty"`
	ScheduledType               string     `json:"scheduledType,omitempty"`
	MeetingType                 string     `json:"meetingType,omitempty"`
	State                       string     `json:"state,omitempty"`
	HostEmail                   string     `json:"hostEmail,omitempty"`
	HostDisplayName             string     `json:"hostDisplayName,omitempty"`
	SiteURL                     string     `json:"siteUrl,omitempty"`
	WebLink                     string     `json:"webLink,omitempty"`
	SipAddress                  string     `json:"sipAddress,omitempty"`
	MeetingNumber               string     `json:"meetingNumber,omitempty"`
	Created                     *time.Time `json:"created,omitempty"`
}

// Client is the meetings API client.
type Client struct {
	webex *webex.Client
}

// New creates a meetings client on top of the authenticated Webex client.
func New(webexClient *webex.Client) *Client {
	return &Client{webex: webexClient}
}

// Create schedules a new meeting and returns the created record. Title,
// start and end must be present; everything else, including whether end
// comes after start, is validated by the API and surfaces as *webex.APIError.
// An unset ScheduledType defaults to "meeting".
func (c *Client) Create(ctx context.Context, meeting *Meeting) (*Meeting, error) {
	if meeting.Title == "" {
		return nil, fmt.Errorf("meeting title is required")
	}
	if meeting.Start == "" {
		return nil, fmt.Errorf("meeting start time is required")
	}
	if meeting.End == "" {
		return nil, fmt.Errorf("meeting end time is required")
	}

	payload := *meeting
	if payload.ScheduledType == "" {
		payload.ScheduledType = ScheduledTypeMeeting
	}

	resp, err := c.webex.Post(ctx, "meetings", payload)
	if err != nil {
		return nil, fmt.Errorf("creating meeting: %w", err)
	}

	var created Meeting
	if err := webex.ParseResponse(resp, &created); err != nil {
		return nil, fmt.Errorf("creating meeting: %w", err)
	}
	return &created, nil
}

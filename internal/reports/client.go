package reports

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/collabops/webexctl/internal/logging"
	"github.com/collabops/webexctl/internal/webex"
)

// Client is the reports API client.
type Client struct {
	webex *webex.Client
}

// New creates a reports client on top of the authenticated Webex client.
func New(webexClient *webex.Client) *Client {
	return &Client{webex: webexClient}
}

// Templates returns every report template available to the account.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	resp, err := c.webex.Get(ctx, "report/templates", nil)
	if err != nil {
		return nil, fmt.Errorf("listing report templates: %w", err)
	}

	var list templateList
	if err := webex.ParseResponse(resp, &list); err != nil {
		return nil, fmt.Errorf("listing report templates: %w", err)
	}
	return list.Items, nil
}

// Create requests generation of a new report and returns its job id.
func (c *Client) Create(ctx context.Context, req CreateRequest) (string, error) {
	resp, err := c.webex.Post(ctx, "reports", req)
	if err != nil {
		return "", fmt.Errorf("requesting report: %w", err)
	}

	var created createResponse
	if err := webex.ParseResponse(resp, &created); err != nil {
		return "", fmt.Errorf("requesting report: %w", err)
	}
	if created.Items.ID == "" {
		return "", &webex.ProtocolError{Op: "create report", Err: errors.New("response missing report id")}
	}

	c.webex.Logger().Debug("report requested",
		logging.ReportID(created.Items.ID),
		logging.TemplateID(req.TemplateID))
	return created.Items.ID, nil
}

// Get returns the current details of a report job, including its status and,
// once done, the download URL.
func (c *Client) Get(ctx context.Context, id string) (*Report, error) {
	resp, err := c.webex.Get(ctx, "reports/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("fetching report %s: %w", id, err)
	}

	var list reportList
	if err := webex.ParseResponse(resp, &list); err != nil {
		return nil, fmt.Errorf("fetching report %s: %w", id, err)
	}
	if len(list.Items) == 0 {
		return nil, &webex.ProtocolError{Op: "get report", Err: errors.New("empty items")}
	}
	return &list.Items[0], nil
}

// PollUntilDone fetches the report at the given interval until it reaches a
// terminal status or the attempt limit is exhausted. The wait between polls
// honors context cancellation.
func (c *Client) PollUntilDone(ctx context.Context, id string, interval time.Duration, attempts int) (*Report, error) {
	logger := c.webex.Logger()

	for attempt := 1; attempt <= attempts; attempt++ {
		report, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if report.Done() {
			return report, nil
		}
		if report.Failed() {
			return nil, fmt.Errorf("report %s generation failed with status %q", id, report.Status)
		}

		logger.Debug("report not ready",
			logging.ReportID(id),
			logging.Status(strings.ToLower(report.Status)),
			logging.Attempt(attempt))

		if attempt == attempts {
			break
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("report %s did not complete after %d attempts", id, attempts)
}

// Download fetches the report details and returns the raw bytes behind its
// download URL. The job must have finished successfully.
func (c *Client) Download(ctx context.Context, id string) ([]byte, error) {
	report, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !report.Done() {
		return nil, &webex.ProtocolError{Op: "download report", Err: fmt.Errorf("status is %q, not %q", report.Status, StatusDone)}
	}
	if report.DownloadURL == "" {
		return nil, &webex.ProtocolError{Op: "download report", Err: errors.New("missing download URL")}
	}
	return c.DownloadFrom(ctx, report.DownloadURL)
}

// DownloadFrom fetches the raw report bytes from an already known download
// URL. Download URLs are absolute and still require the bearer token.
func (c *Client) DownloadFrom(ctx context.Context, downloadURL string) ([]byte, error) {
	resp, err := c.webex.GetURL(ctx, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("downloading report: %w", err)
	}

	body, err := webex.ReadResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("downloading report: %w", err)
	}
	return body, nil
}

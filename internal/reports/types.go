package reports

import "strings"

// Report statuses as returned by the API. Comparisons are case-insensitive;
// anything other than these values means the report is still being generated.
const (
	StatusDone   = "done"
	StatusFailed = "failed"
	StatusError  = "error"
)

// Template is a report template from GET report/templates. The reports API
// capitalizes the Id key, unlike the rest of the Webex API.
type Template struct {
	ID      int    `json:"Id"`
	Title   string `json:"title"`
	Service string `json:"service"`
	MaxDays int    `json:"maxDays"`
}

// CreateRequest is the body of POST reports.
type CreateRequest struct {
	TemplateID int    `json:"templateId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	SiteList   string `json:"siteList"`
}

// Report is a report job from GET reports/{id}.
type Report struct {
	ID          string `json:"Id"`
	Title       string `json:"title"`
	Service     string `json:"service"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	SiteList    string `json:"siteList"`
	DownloadURL string `json:"downloadURL"`
	CreatedTime string `json:"createdTime"`
}

// Done reports whether the job reached its success-terminal status.
func (r *Report) Done() bool {
	return strings.EqualFold(r.Status, StatusDone)
}

// Failed reports whether the job reached a failure-terminal status.
func (r *Report) Failed() bool {
	return strings.EqualFold(r.Status, StatusFailed) || strings.EqualFold(r.Status, StatusError)
}

type templateList struct {
	Items []Template `json:"items"`
}

// createResponse carries the one quirk of POST reports: items is a single
// object here, an array everywhere else.
type createResponse struct {
	Items struct {
		ID string `json:"Id"`
	} `json:"items"`
}

type reportList struct {
	Items []Report `json:"items"`
}

// FilterByService returns the templates whose service matches one of the
// given names. Names are trimmed of surrounding space so comma-separated
// configuration lists behave as expected.
func FilterByService(templates []Template, services []string) []Template {
	want := make(map[string]bool, len(services))
	for _, s := range services {
		want[strings.TrimSpace(s)] = true
	}

	var filtered []Template
	for _, t := range templates {
		if want[t.Service] {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

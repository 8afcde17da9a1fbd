package reports

import "time"

// dateFormat is the date layout the reports API expects.
const dateFormat = "2006-01-02"

// Window is the date range a report covers.
type Window struct {
	Start string
	End   string
}

// WindowEndingYesterday returns the range ending the day before now and
// starting daysBack days earlier, formatted for the reports API.
func WindowEndingYesterday(now time.Time, daysBack int) Window {
	end := now.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -daysBack)
	return Window{
		Start: start.Format(dateFormat),
		End:   end.Format(dateFormat),
	}
}

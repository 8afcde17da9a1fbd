// Package reports implements the Webex reports API operations used to
// generate and fetch meeting-usage reports.
//
// The lifecycle is: Templates lists what the account can generate,
// SelectTemplate lets the user pick one, Create submits a generation request
// for a date window (see WindowEndingYesterday), PollUntilDone waits for a
// terminal status, and Download/DownloadFrom fetch the result. Downloads are
// usually ZIP archives wrapping a single CSV; ExtractCSV unwraps them.
//
// The reports API has two JSON quirks the types here absorb: resource ids
// use a capitalized Id key, and the items field of a create response is an
// object where every other endpoint returns an array.
package reports

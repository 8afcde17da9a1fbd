package reports

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/collabops/webexctl/internal/webex"
)

// zipMagic is the ZIP local file header signature.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// IsZIP reports whether data starts with the ZIP file signature.
func IsZIP(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// ExtractCSV returns the spreadsheet bytes from a report download. Webex
// usually wraps the CSV in a ZIP archive; for such payloads the first .csv
// member is returned. Anything else is returned unchanged.
func ExtractCSV(data []byte) ([]byte, error) {
	if !IsZIP(data) {
		return data, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &webex.ProtocolError{Op: "extract report archive", Err: err}
	}

	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, ".csv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &webex.ProtocolError{Op: "extract report archive", Err: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &webex.ProtocolError{Op: "extract report archive", Err: err}
		}
		return content, nil
	}

	return nil, &webex.ProtocolError{Op: "extract report archive", Err: errors.New("no csv file in archive")}
}

// DefaultFilename returns the timestamped filename used when no output file
// is configured.
func DefaultFilename(now time.Time) string {
	return "webex_report_" + now.Format("20060102_150405") + ".csv"
}

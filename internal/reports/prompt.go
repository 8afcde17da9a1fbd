package reports

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned when a template selection cannot be
// completed: there is nothing to choose from, or input ran out before a
// valid id was entered.
var ErrInvalidSelection = errors.New("no valid template selection")

const menuDivider = "======================================================================"

// SelectTemplate prints the template menu to w and reads template ids from r
// until one matches. Invalid entries prompt again; exhausted input returns
// ErrInvalidSelection so non-interactive runs fail instead of spinning.
func SelectTemplate(r io.Reader, w io.Writer, templates []Template) (*Template, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: no templates to choose from", ErrInvalidSelection)
	}

	byID := make(map[int]*Template, len(templates))

	fmt.Fprintln(w, menuDivider)
	fmt.Fprintln(w, "AVAILABLE REPORTS")
	fmt.Fprintln(w, menuDivider)
	for i := range templates {
		t := &templates[i]
		byID[t.ID] = t
		fmt.Fprintf(w, "\n[%d] %s\n", t.ID, t.Title)
		fmt.Fprintf(w, "    Service: %s | Max Days: %d\n", t.Service, t.MaxDays)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, menuDivider)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\nEnter the report number to generate: ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading selection: %w", err)
			}
			return nil, ErrInvalidSelection
		}

		id, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(w, "Please enter a valid number.")
			continue
		}
		if t, ok := byID[id]; ok {
			return t, nil
		}
		fmt.Fprintln(w, "Invalid selection. Please choose from the list above.")
	}
}

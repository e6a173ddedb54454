package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/casefin/organizer"
)

// WriteDeadlinesICS writes the case deadlines as an iCalendar file of all-day
// events. The output is deterministic: equal documents produce byte-equal
// calendars, so the DTSTAMP derives from each event's own date instead of the
// wall clock. Done deadlines are kept with STATUS:COMPLETED so importing the
// file twice stays consistent.
func WriteDeadlinesICS(w io.Writer, doc organizer.Document) error {
	var b strings.Builder
	line := func(s string) { b.WriteString(s + "\r\n") }

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//casefin//organizer//EN")
	line("CALSCALE:GREGORIAN")
	for _, d := range doc.Divorce.Deadlines {
		if d.Date.IsZero() {
			continue
		}
		stamp := icsDate(d.Date)
		line("BEGIN:VEVENT")
		line("UID:" + d.ID + "@casefin.organizer")
		line("DTSTAMP:" + stamp + "T000000Z")
		line("DTSTART;VALUE=DATE:" + stamp)
		line("SUMMARY:" + icsEscape(d.Label))
		if d.Done {
			line("STATUS:COMPLETED")
		}
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("could not write calendar: %w", err)
	}
	return nil
}

func icsDate(d organizer.Date) string {
	return strings.ReplaceAll(d.String(), "-", "")
}

// icsEscape escapes the characters RFC 5545 reserves in text values.
func icsEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return r.Replace(s)
}

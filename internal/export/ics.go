package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/dpavliga/lifeledger/internal/models"
)

// iCalendar emission for the engine's event tuples. The engine hands over
// (date, amount, label, kind) and knows nothing about this format; everything
// RFC 5545 lives here: CRLF line endings, 75-octet folding, text escaping and
// UTC timestamps.

const (
	prodID      = "-//LifeLedger//Planner//EN"
	stampLayout = "20060102T150405Z"
	dateLayout  = "20060102"
)

// Calendar serializes the events into a single VCALENDAR document. The stamp
// is used for every DTSTAMP so output is reproducible for a fixed input.
func Calendar(events []models.CalendarEvent, stamp time.Time) []byte {
	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	for i, ev := range events {
		writeEvent(&b, ev, stamp, i)
	}
	writeLine(&b, "END:VCALENDAR")
	return []byte(b.String())
}

func writeEvent(b *strings.Builder, ev models.CalendarEvent, stamp time.Time, seq int) {
	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, fmt.Sprintf("UID:%s-%d-%s@lifeledger", ev.Kind, seq, ev.Date.UTC().Format(dateLayout)))
	writeLine(b, "DTSTAMP:"+stamp.UTC().Format(stampLayout))
	if ev.AllDay {
		writeLine(b, "DTSTART;VALUE=DATE:"+ev.Date.UTC().Format(dateLayout))
	} else {
		start := ev.Date.UTC()
		writeLine(b, "DTSTART:"+start.Format(stampLayout))
		if ev.Duration > 0 {
			end := start.Add(time.Duration(ev.Duration) * time.Minute)
			writeLine(b, "DTEND:"+end.Format(stampLayout))
		}
	}
	writeLine(b, "SUMMARY:"+escapeText(summaryFor(ev)))
	if ev.Amount > 0 {
		writeLine(b, fmt.Sprintf("DESCRIPTION:%s", escapeText(fmt.Sprintf("Amount: %.2f", ev.Amount))))
	}
	writeLine(b, "CATEGORIES:"+escapeText(strings.ToUpper(ev.Kind)))
	writeLine(b, "END:VEVENT")
}

func summaryFor(ev models.CalendarEvent) string {
	switch ev.Kind {
	case models.EventPayday:
		return "Payday: " + ev.Label
	case models.EventBill:
		return "Bill due: " + ev.Label
	case models.EventInstallment:
		return "Installment: " + ev.Label
	case models.EventWorkout:
		return "Workout: " + ev.Label
	default:
		return ev.Label
	}
}

// escapeText applies RFC 5545 TEXT escaping: backslash first, then comma,
// semicolon and newline.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// writeLine appends a content line with CRLF, folding anything longer than 75
// octets with a CRLF-plus-space continuation.
func writeLine(b *strings.Builder, line string) {
	const limit = 75
	for len(line) > limit {
		cut := limit
		// never split a UTF-8 sequence
		for cut > 1 && line[cut]&0xC0 == 0x80 {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

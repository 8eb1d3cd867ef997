// Package compose builds newsletter content from the current event list and
// a free-text intro. Everything here is a pure function of its inputs: no
// store access, no I/O, and no failure modes for well-typed inputs.
package compose

import (
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// DefaultIntro is the pre-filled message offered before the user edits it.
const DefaultIntro = "hey friends! here's what i'm up to this month. would love to see you at any of these"

// shortDate is the compact per-event timestamp used in plain text,
// e.g. "Sat, Sep 12, 7:00 PM".
const shortDate = "Mon, Jan 2, 3:04 PM"

// UpcomingEvents filters to events at or after now, sorted ascending by
// date. An event starting exactly at now is included. The input slice is
// not modified.
func UpcomingEvents(all []models.Event, now time.Time) []models.Event {
	upcoming := make([]models.Event, 0, len(all))
	for _, e := range all {
		if !e.Date.Before(now) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming
}

// Subject returns the newsletter subject line for the given time,
// e.g. "September update".
func Subject(now time.Time) string {
	return now.Month().String() + " update"
}

// RenderPlainText builds the plain-text newsletter body: the intro verbatim,
// a WHERE I'LL BE: section when there are events, and a fixed sign-off.
// Missing optional event fields are omitted, never an error.
func RenderPlainText(intro string, events []models.Event) string {
	var b strings.Builder

	b.WriteString(intro)
	b.WriteString("\n\n")

	if len(events) > 0 {
		b.WriteString("WHERE I'LL BE:\n\n")
		for _, e := range events {
			b.WriteString(e.Title)
			b.WriteString("\n")
			b.WriteString(e.Date.Format(shortDate))
			b.WriteString("\n")
			if e.Location != "" {
				b.WriteString(e.Location)
				b.WriteString("\n")
			}
			if e.Description != "" {
				b.WriteString(e.Description)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nhope to see you soon!\n\n")
	b.WriteString("sent with luv")

	return b.String()
}

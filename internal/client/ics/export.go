// Package ics renders the event list as an iCalendar document so it can be
// loaded into any calendar app.
package ics

import (
	"fmt"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// defaultDuration pads events without an explicit end; the store keeps only
// a start timestamp.
const defaultDuration = time.Hour

// Export serializes events as a VCALENDAR, one VEVENT each, sorted by date
// so the output is stable for identical inputs.
func Export(events []models.Event) string {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, e := range sorted {
		ev := cal.AddEvent(fmt.Sprintf("%s@luvletter", e.ID))
		ev.SetCreatedTime(e.CreatedAt)
		ev.SetDtStampTime(e.CreatedAt)
		ev.SetStartAt(e.Date)
		ev.SetEndAt(e.Date.Add(defaultDuration))
		ev.SetSummary(e.Title)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
	}

	return cal.Serialize()
}

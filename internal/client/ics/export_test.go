package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestExport_OneVEventPerEvent(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: "2", Title: "later", Date: now.Add(48 * time.Hour), CreatedAt: now},
		{ID: "1", Title: "sooner", Date: now.Add(time.Hour), Location: "The Cave", CreatedAt: now},
	}

	out := Export(events)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:1@luvletter")
	assert.Contains(t, out, "UID:2@luvletter")
	assert.Contains(t, out, "SUMMARY:sooner")
	assert.Contains(t, out, "LOCATION:The Cave")

	// sorted by date: "sooner" serialized before "later"
	assert.Less(t, strings.Index(out, "SUMMARY:sooner"), strings.Index(out, "SUMMARY:later"))
}

func TestExport_Empty(t *testing.T) {
	out := Export(nil)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT)")
	assert.Equal(t, 0, strings.Count(out, "BEGIN:VEVENT"))
}

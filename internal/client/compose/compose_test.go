package compose

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func ev(title string, date time.Time) models.Event {
	return models.Event{ID: title, Title: title, Date: date}
}

func TestUpcomingEvents_FilterAndSort(t *testing.T) {
	all := []models.Event{
		ev("past", now.Add(-time.Hour)),
		ev("later", now.Add(48*time.Hour)),
		ev("soon", now.Add(time.Hour)),
		ev("exactly now", now),
	}

	got := UpcomingEvents(all, now)

	require.Len(t, got, 3)
	assert.Equal(t, "exactly now", got[0].Title) // ties at now resolve to inclusion
	assert.Equal(t, "soon", got[1].Title)
	assert.Equal(t, "later", got[2].Title)
}

func TestUpcomingEvents_DoesNotMutateInput(t *testing.T) {
	all := []models.Event{
		ev("b", now.Add(2*time.Hour)),
		ev("a", now.Add(time.Hour)),
	}
	_ = UpcomingEvents(all, now)
	assert.Equal(t, "b", all[0].Title)
}

func TestUpcomingEvents_Empty(t *testing.T) {
	assert.Empty(t, UpcomingEvents(nil, now))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "September update", Subject(now))
	assert.Equal(t, "January update", Subject(time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestRenderPlainText_ContainsIntroVerbatim(t *testing.T) {
	intro := "hey! here's what i'm up to..."
	out := RenderPlainText(intro, nil)
	assert.Contains(t, out, intro)
	assert.NotContains(t, out, "WHERE I'LL BE:")
	assert.Contains(t, out, "hope to see you soon!")
	assert.Contains(t, out, "sent with luv")
}

func TestRenderPlainText_HeaderExactlyOnce(t *testing.T) {
	events := []models.Event{
		{Title: "gig", Date: now.Add(time.Hour), Location: "The Cave"},
		{Title: "reading", Date: now.Add(2 * time.Hour), Description: "bring a book"},
	}
	out := RenderPlainText("hi", events)

	assert.Equal(t, 1, strings.Count(out, "WHERE I'LL BE:"))
	assert.Contains(t, out, "gig")
	assert.Contains(t, out, "The Cave")
	assert.Contains(t, out, "reading")
	assert.Contains(t, out, "bring a book")
}

func TestRenderPlainText_OmitsMissingOptionalFields(t *testing.T) {
	events := []models.Event{{Title: "bare", Date: now.Add(time.Hour)}}
	out := RenderPlainText("hi", events)

	// the event block is title, date, then a blank separator line
	idx := strings.Index(out, "bare\n")
	require.GreaterOrEqual(t, idx, 0)
	block := out[idx:]
	lines := strings.SplitN(block, "\n", 4)
	assert.Equal(t, "bare", lines[0])
	assert.NotEmpty(t, lines[1]) // formatted date
	assert.Empty(t, lines[2])    // separator, nothing in between
}

func TestRenderPlainText_Deterministic(t *testing.T) {
	events := []models.Event{{Title: "x", Date: now}}
	assert.Equal(t, RenderPlainText("a", events), RenderPlainText("a", events))
}

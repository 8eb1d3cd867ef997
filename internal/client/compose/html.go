package compose

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// longDate is the verbose per-event timestamp used in HTML,
// e.g. "Saturday, September 12, 2026, 7:00 PM".
const longDate = "Monday, January 2, 2006, 3:04 PM"

var htmlTmpl = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Month}} Update</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 40px 20px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: bold;">
        {{.Month}}
      </h1>
      <p style="color: #ffffff; margin: 10px 0 0 0; opacity: 0.9; font-size: 16px;">
        Update from {{.FromName}}
      </p>
    </div>

    <div style="padding: 30px 20px;">
      <p style="color: #333333; line-height: 1.6; margin: 0; font-size: 16px;">
        {{.Intro}}
      </p>
    </div>
{{if .Events}}
    <div style="padding: 0 20px 30px 20px;">
      <h2 style="color: #333333; font-size: 22px; margin: 0 0 20px 0; border-bottom: 2px solid #667eea; padding-bottom: 10px;">
        Where I'll Be
      </h2>
{{range .Events}}
      <div style="background-color: #f9fafb; border-left: 4px solid #667eea; padding: 20px; margin-bottom: 20px; border-radius: 4px;">
        <h3 style="color: #333333; margin: 0 0 10px 0; font-size: 18px;">
          {{.Title}}
        </h3>
        <p style="color: #666666; margin: 0 0 8px 0; font-size: 14px;">
          &#128197; {{.When}}
        </p>
{{if .Location}}
        <p style="color: #666666; margin: 0 0 8px 0; font-size: 14px;">
          &#128205; {{.Location}}
        </p>
{{end}}
{{if .Description}}
        <p style="color: #666666; margin: 8px 0 0 0; font-size: 14px; line-height: 1.5;">
          {{.Description}}
        </p>
{{end}}
      </div>
{{end}}
    </div>
{{end}}
    <div style="background-color: #f9fafb; padding: 20px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="color: #666666; margin: 0; font-size: 14px;">
        Hope to see you soon! &#128156;
      </p>
      <p style="color: #999999; margin: 10px 0 0 0; font-size: 12px;">
        Sent with Luv Letter
      </p>
    </div>
  </div>
</body>
</html>`))

type htmlEvent struct {
	Title       string
	When        string
	Location    string
	Description string
}

type htmlData struct {
	Month    string
	FromName string
	Intro    template.HTML
	Events   []htmlEvent
}

// RenderHTML produces a self-contained, inline-styled HTML newsletter
// embedding the same information as the plain-text render. Event fields are
// escaped; newlines in the intro become <br> tags. Total for well-typed
// inputs.
func RenderHTML(events []models.Event, intro string, settings models.Settings, now time.Time) string {
	fromName := settings.FromName
	if fromName == "" {
		fromName = "Your Friend"
	}

	escaped := template.HTMLEscapeString(intro)
	introHTML := template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))

	data := htmlData{
		Month:    now.Format("January 2006"),
		FromName: fromName,
		Intro:    introHTML,
		Events:   make([]htmlEvent, 0, len(events)),
	}
	for _, e := range events {
		data.Events = append(data.Events, htmlEvent{
			Title:       e.Title,
			When:        e.Date.Format(longDate),
			Location:    e.Location,
			Description: e.Description,
		})
	}

	var buf bytes.Buffer
	// The template is static and the data contains no failing types, so
	// Execute cannot error here.
	_ = htmlTmpl.Execute(&buf, data)
	return buf.String()
}

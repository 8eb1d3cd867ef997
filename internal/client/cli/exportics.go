package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/luvletter/internal/client/ics"
)

// ExportICS writes the event list as an iCalendar file so friends can drop
// it into their own calendars.
func (a *App) ExportICS(ctx context.Context) error {

	events, err := a.store.ListEvents(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events to export.")
		return nil
	}

	const name = "luvletter-events.ics"
	if err := os.WriteFile(name, []byte(ics.Export(events)), 0o600); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Wrote %d event(s) to %s\n", len(events), name)
	return nil
}

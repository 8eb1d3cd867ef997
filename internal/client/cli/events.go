package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// Accepted input layouts for event dates, tried in order.
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseEventDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

func (a *App) ListEvents(ctx context.Context) error {
	events, err := a.store.ListEvents(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events yet.")
		return nil
	}

	// The store keeps insertion order; display order is by date.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	for _, e := range events {
		fmt.Printf("%s  %s  %s", e.ID, e.Date.Format("2006-01-02 15:04"), e.Title)
		if e.Location != "" {
			fmt.Printf("  @ %s", e.Location)
		}
		fmt.Println()
	}
	return nil
}

// promptEvent collects the replaceable event fields from the user.
func (a *App) promptEvent() (models.Event, error) {

	title, err := GetSimpleText(a.reader, "Event title", os.Stdout)
	if err != nil {
		return models.Event{}, err
	}

	dateRaw, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD or YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return models.Event{}, err
	}
	date, err := parseEventDate(dateRaw)
	if err != nil {
		return models.Event{}, err
	}

	location, err := GetSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return models.Event{}, err
	}

	description, err := GetMultiline(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return models.Event{}, err
	}

	return models.Event{Title: title, Date: date, Location: location, Description: description}, nil
}

func (a *App) AddEvent(ctx context.Context) error {

	e, err := a.promptEvent()
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	saved, err := a.store.AddEvent(ctx, e)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Added event %s\n", saved.ID)
	return nil
}

func (a *App) EditEvent(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter event id to edit", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	e, err := a.promptEvent()
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	saved, err := a.store.UpdateEvent(ctx, id, e)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Updated event %s\n", saved.ID)
	return nil
}

func (a *App) DeleteEvent(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter event id to delete", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if err := a.store.DeleteEvent(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Deleted (if it existed).")
	return nil
}

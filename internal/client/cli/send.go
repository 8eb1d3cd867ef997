package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/luvletter/internal/client/compose"
	"github.com/dmitrijs2005/luvletter/internal/client/dispatch"
	"github.com/dmitrijs2005/luvletter/internal/client/email"
	"github.com/dmitrijs2005/luvletter/internal/client/models"
	"github.com/dmitrijs2005/luvletter/internal/common"
)

// promptIntro asks for the newsletter intro, falling back to the default
// when the user just presses Enter.
func (a *App) promptIntro() (string, error) {
	intro, err := GetMultiline(a.reader, "Intro message (empty for the usual one)", os.Stdout)
	if err != nil {
		return "", err
	}
	if intro == "" {
		intro = compose.DefaultIntro
	}
	return intro, nil
}

func (a *App) upcoming(ctx context.Context) ([]models.Event, error) {
	events, err := a.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return compose.UpcomingEvents(events, time.Now()), nil
}

// Preview renders the newsletter as the plain-text version SMS and mailto
// recipients will get.
func (a *App) Preview(ctx context.Context) error {

	upcoming, err := a.upcoming(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	intro, err := a.promptIntro()
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Subject:", compose.Subject(time.Now()))
	fmt.Println("---")
	fmt.Println(compose.RenderPlainText(intro, upcoming))
	fmt.Println("---")
	return nil
}

// Send composes the newsletter and dispatches it to every friend on the
// list: email friends through the provider API (when configured) or the
// mail-client handoff, phone friends through the SMS relay.
func (a *App) Send(ctx context.Context) error {

	subs, err := a.store.ListSubscribers(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	upcoming, err := a.upcoming(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	intro, err := a.promptIntro()
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	d := &dispatch.Dispatcher{
		Mail: systemMailOpener{},
		Clip: systemClipboard{},
		SMS:  a.sms,
		Confirm: func(prompt string) bool {
			return GetConfirmation(a.reader, prompt, os.Stdout)
		},
		Logger: a.logger,
	}

	if settings.ProviderConfigured() {
		sender, err := email.NewSender(settings, &http.Client{Timeout: a.config.HTTPTimeout})
		if err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}
		d.Email = sender
	}

	res, err := d.Send(ctx, subs, upcoming, intro, settings)
	if err != nil {
		if errors.Is(err, common.ErrNothingToSend) {
			fmt.Println("No friends on your list yet — nothing to send.")
			return nil
		}
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println(res.Summary())
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// Settings shows the current configuration and prompts for updates. An
// empty answer keeps the current value; the record is merged before the
// whole-record save.
func (a *App) Settings(ctx context.Context) error {

	current, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Current settings:")
	fmt.Println("  your email: ", orUnset(current.UserEmail))
	fmt.Println("  provider:   ", orUnset(string(current.APIProvider)))
	fmt.Println("  api key:    ", maskKey(current.APIKey))
	fmt.Println("  from email: ", orUnset(current.FromEmail))
	fmt.Println("  from name:  ", orUnset(current.FromName))

	if !GetConfirmation(a.reader, "Update settings?", os.Stdout) {
		return nil
	}

	updated := current

	if v, err := GetSimpleText(a.reader, "Your email (Enter to keep)", os.Stdout); err == nil && v != "" {
		updated.UserEmail = v
	}

	if v, err := GetSimpleText(a.reader, "Email provider: resend or sendgrid (Enter to keep)", os.Stdout); err == nil && v != "" {
		updated.APIProvider = models.Provider(strings.ToLower(v))
	}

	if v, err := GetSecret("API key (Enter to keep)", os.Stdout); err == nil && v != "" {
		updated.APIKey = v
	}

	if v, err := GetSimpleText(a.reader, "From email (Enter to keep)", os.Stdout); err == nil && v != "" {
		updated.FromEmail = v
	}

	if v, err := GetSimpleText(a.reader, "From name (Enter to keep)", os.Stdout); err == nil && v != "" {
		updated.FromName = v
	}

	if err := a.store.SaveSettings(ctx, updated); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Settings saved.")
	if updated.ProviderConfigured() {
		fmt.Println("Email provider configured — newsletters will be sent through", updated.APIProvider)
	}
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

package cli

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/dmitrijs2005/luvletter/internal/client/models"
)

// subscribeBase is the public page the subscribe link points at. The owner
// query parameter tells the page whose list the visitor is joining.
const subscribeBase = "https://luvletter.app/"

func (a *App) ListFriends(ctx context.Context) error {
	subs, err := a.store.ListSubscribers(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(subs) == 0 {
		fmt.Println("No friends on your list yet.")
		return nil
	}

	for _, s := range subs {
		name := s.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%s  [%s]  %s  %s\n", s.ID, s.Channel(), s.Contact, name)
	}
	fmt.Printf("%d friend(s) on your list\n", len(subs))
	return nil
}

func (a *App) AddFriend(ctx context.Context) error {

	contact, err := GetSimpleText(a.reader, "Email address or phone number", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Name (optional)", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	chRaw, err := GetSimpleText(a.reader, "Channel: email or phone (default email)", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	ch := models.ChannelEmail
	if chRaw == "phone" {
		ch = models.ChannelPhone
	}

	saved, err := a.store.AddSubscriber(ctx, contact, name, ch)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Added friend %s (%s)\n", saved.ID, saved.Contact)
	return nil
}

func (a *App) DeleteFriend(ctx context.Context) error {

	id, err := GetSimpleText(a.reader, "Enter friend id to remove", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if !GetConfirmation(a.reader, "Remove this friend?", os.Stdout) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.store.DeleteSubscriber(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Removed (if they were on the list).")
	return nil
}

// ShareFriends copies the friend list as JSON to the clipboard so it can be
// pasted into another phone or laptop running the app.
func (a *App) ShareFriends(ctx context.Context) error {

	data, count, err := a.store.ExportFriendList(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if err := (systemClipboard{}).Write(string(data)); err != nil {
		// Clipboard may be unavailable over SSH; show the JSON instead.
		fmt.Println("Copy this and share:")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Friend list (%d) copied to clipboard.\n", count)
	return nil
}

func (a *App) ImportFriends(ctx context.Context) error {

	data, err := GetMultiline(a.reader, "Paste the shared friend list JSON", os.Stdout)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	added, err := a.store.ImportFriendList(ctx, []byte(data))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Imported %d friend(s).\n", added)
	return nil
}

// SubscribeLink prints a shareable link built from the saved user email,
// with a ready-to-text message around it.
func (a *App) SubscribeLink(ctx context.Context) error {

	settings, err := a.store.GetSettings(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if settings.UserEmail == "" {
		fmt.Println("Save your email first (settings) so friends know whose list they're joining.")
		return nil
	}

	link := subscribeBase + "?subscribe=true&owner=" + url.QueryEscape(settings.UserEmail)
	message := fmt.Sprintf("hey! i'm sending monthly luv-letters about where i'll be. click here to subscribe: %s", link)

	fmt.Println("Subscribe link ready for:", settings.UserEmail)
	fmt.Println(message)

	if err := (systemClipboard{}).Write(message); err == nil {
		fmt.Println("(copied to clipboard)")
	}
	return nil
}

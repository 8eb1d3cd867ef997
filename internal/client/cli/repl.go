package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ListEvents(ctx context.Context) error
	AddEvent(ctx context.Context) error
	EditEvent(ctx context.Context) error
	DeleteEvent(ctx context.Context) error
	ListFriends(ctx context.Context) error
	AddFriend(ctx context.Context) error
	DeleteFriend(ctx context.Context) error
	ShareFriends(ctx context.Context) error
	ImportFriends(ctx context.Context) error
	SubscribeLink(ctx context.Context) error
	Preview(ctx context.Context) error
	Send(ctx context.Context) error
	Settings(ctx context.Context) error
	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
	ExportICS(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the luvletter CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	events      — list events
//	addevent    — add an event
//	editevent   — replace an event (keeps its id)
//	delevent    — delete an event
//	friends     — list friends
//	addfriend   — add a friend (email or phone)
//	delfriend   — remove a friend
//	share       — copy the friend list as JSON to the clipboard
//	import      — paste a friend list JSON and merge it in
//	sublink     — print a shareable subscribe link
//	preview     — show the newsletter as plain text
//	send        — compose and dispatch the newsletter
//	settings    — view and update settings
//	backup      — write everything to a backup file
//	restore     — load a backup file
//	ics         — export events as an iCalendar file
//	exit | quit — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("luv %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: events, addevent, editevent, delevent, friends, addfriend, delfriend, share, import, sublink, preview, send, settings, backup, restore, ics, exit")

		case "events":
			_ = a.ListEvents(ctx)

		case "addevent":
			_ = a.AddEvent(ctx)

		case "editevent":
			_ = a.EditEvent(ctx)

		case "delevent":
			_ = a.DeleteEvent(ctx)

		case "friends":
			_ = a.ListFriends(ctx)

		case "addfriend":
			_ = a.AddFriend(ctx)

		case "delfriend":
			_ = a.DeleteFriend(ctx)

		case "share":
			_ = a.ShareFriends(ctx)

		case "import":
			_ = a.ImportFriends(ctx)

		case "sublink":
			_ = a.SubscribeLink(ctx)

		case "preview":
			_ = a.Preview(ctx)

		case "send":
			_ = a.Send(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "restore":
			_ = a.Restore(ctx)

		case "ics":
			_ = a.ExportICS(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

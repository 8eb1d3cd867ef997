// Package cli provides the interactive luv letter command-line client.
//
// It wires configuration, the local store, the relay client, and an
// interactive REPL. Typical flow: add events and friends, preview the
// newsletter, then send it — email friends get a prefilled mail-client
// draft (or a provider API send when one is configured), phone friends get
// an SMS through the relay gateway.
//
// Key features:
//   - Events: add, edit, delete, list, iCalendar export
//   - Friends: add, remove, list, share/import as JSON, subscribe link
//   - Newsletter: preview, send with per-friend outcome report
//   - Settings: user email and optional email provider credentials
//   - Backup and restore of everything as one JSON file
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

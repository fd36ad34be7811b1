// Package cli provides the interactive Maré Viva command-line client.
//
// It wires configuration, the local SQLite store, and the domain services
// into a REPL. All data lives on the device; there is no backend.
//
// Key flows:
//   - Register / Login / password recovery with one-time codes
//   - Browse the catalog, manage own listings
//   - Conversations with other users, with periodic refresh while a
//     conversation is open
//   - View and edit the profile
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli

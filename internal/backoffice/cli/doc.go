// Package cli provides the interactive back-office console.
//
// It wires configuration, the local store, and the domain services into an
// interactive REPL for administering the marketplace: browsing and
// (de)activating buyer accounts, working the seller verification queue,
// resetting credentials across account kinds, and reviewing orders.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

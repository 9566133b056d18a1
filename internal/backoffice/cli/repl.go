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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Register(ctx context.Context) error
	ListUsers(ctx context.Context) error
	SearchUsers(ctx context.Context) error
	Activate(ctx context.Context) error
	Deactivate(ctx context.Context) error
	ListRequests(ctx context.Context) error
	SubmitRequest(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	SearchSellers(ctx context.Context) error
	FindIdentities(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	EditIdentity(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	SaveProfile(ctx context.Context) error
	ListOrders(ctx context.Context) error
	ShowStats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the back-office console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - register       — create a buyer account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Signed in, additionally:
//	  - users          — list accounts
//	  - search         — search accounts (interactive term prompt)
//	  - activate       — reactivate an account
//	  - deactivate     — deactivate an account
//	  - requests       — list seller verification requests
//	  - submit         — file a seller verification request
//	  - approve        — approve a request (interactive id prompt)
//	  - reject         — reject a request (interactive id prompt)
//	  - sellers        — search approved sellers
//	  - find           — find identities eligible for credential reset
//	  - resetpass      — reset a password for a selected identity
//	  - edit           — edit a selected identity's name and phone
//	  - profile        — show the admin profile
//	  - saveprofile    — update the admin profile
//	  - orders         — list the order ledger
//	  - stats          — show dashboard counters
//	  - logout         — sign out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bo> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Please sign in first.")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: users, search, activate, deactivate, requests, submit, approve, reject, sellers, find, resetpass, edit, profile, saveprofile, orders, stats, logout, exit")

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "u", "users":
			_ = a.ListUsers(ctx)

		case "search":
			_ = a.SearchUsers(ctx)

		case "activate":
			_ = a.Activate(ctx)

		case "deactivate":
			_ = a.Deactivate(ctx)

		case "r", "requests":
			_ = a.ListRequests(ctx)

		case "submit":
			_ = a.SubmitRequest(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "sellers":
			_ = a.SearchSellers(ctx)

		case "find":
			_ = a.FindIdentities(ctx)

		case "resetpass":
			_ = a.ResetPassword(ctx)

		case "edit":
			_ = a.EditIdentity(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "saveprofile":
			_ = a.SaveProfile(ctx)

		case "o", "orders":
			_ = a.ListOrders(ctx)

		case "stats":
			_ = a.ShowStats(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

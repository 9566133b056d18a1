package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email (or account name) and a password and tries to
// sign in. On success the session is persisted by the auth service, so a
// later run of the console starts signed in.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email or name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, identifier, password)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	a.user = session.User.Email
	name := session.User.Name
	if name == "" {
		name = session.User.Email
	}
	printlnFn("Welcome, " + name + "!")
	return nil
}

// Logout clears the persisted session and the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "error clearing session", "error", err)
		return err
	}
	a.user = ""
	printlnFn("Signed out.")
	return nil
}

// Register prompts for an email and a password (entered twice) and creates
// a buyer account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Register(ctx, email, password, confirm)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Registered " + user.Email + ". You can sign in now.")
	return nil
}

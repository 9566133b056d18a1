package cli

import (
	"context"
	"os"
)

// ListUsers prints every account in the directory.
func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.users.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "error listing accounts", "error", err)
		return err
	}
	for _, u := range users {
		printlnFn(formatUser(u))
	}
	return nil
}

// SearchUsers prompts for a term and prints matching accounts. An empty
// term matches nothing.
func (a *App) SearchUsers(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search accounts by email or name", os.Stdout)
	if err != nil {
		return err
	}

	users, err := a.users.Search(ctx, term)
	if err != nil {
		a.logger.Error(ctx, "error searching accounts", "error", err)
		return err
	}

	if len(users) == 0 {
		printlnFn("No matching accounts.")
		return nil
	}
	for _, u := range users {
		printlnFn(formatUser(u))
	}
	return nil
}

// Activate prompts for an email and reactivates the account.
func (a *App) Activate(ctx context.Context) error {
	return a.setActive(ctx, true)
}

// Deactivate prompts for an email and deactivates the account, blocking
// future sign-ins until it is reactivated.
func (a *App) Deactivate(ctx context.Context) error {
	return a.setActive(ctx, false)
}

func (a *App) setActive(ctx context.Context, active bool) error {
	email, err := getSimpleText(a.reader, "Account email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.users.SetActive(ctx, email, active); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	if active {
		printlnFn("Account activated.")
	} else {
		printlnFn("Account deactivated.")
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/greengrove/backoffice/internal/backoffice/credentials"
)

// FindIdentities prompts for a term and prints the accounts and approved
// sellers eligible for a credential reset.
func (a *App) FindIdentities(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search by email or name", os.Stdout)
	if err != nil {
		return err
	}

	found, err := a.creds.FindCandidates(ctx, term)
	if err != nil {
		a.logger.Error(ctx, "error searching identities", "error", err)
		return err
	}

	if len(found) == 0 {
		printlnFn("No matching identities.")
		return nil
	}
	for _, c := range found {
		printlnFn(fmt.Sprintf("%-8s %-28s %s", c.Kind, c.Email, c.DisplayName))
	}
	return nil
}

// ResetPassword prompts for an identity (kind plus email) and a new password
// entered twice, then resets the credentials of that identity only.
func (a *App) ResetPassword(ctx context.Context) error {
	kind, email, err := a.selectIdentity()
	if err != nil {
		return err
	}

	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.creds.ResetPassword(ctx, kind, email, password, confirm); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Password updated.")
	return nil
}

// EditIdentity prompts for an identity and new contact details and updates
// the identity's name and phone.
func (a *App) EditIdentity(ctx context.Context) error {
	kind, email, err := a.selectIdentity()
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.creds.EditIdentity(ctx, kind, email, name, phone); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Identity updated.")
	return nil
}

func (a *App) selectIdentity() (credentials.Kind, string, error) {
	kind, err := getSimpleText(a.reader, "Kind (user/seller)", os.Stdout)
	if err != nil {
		return "", "", err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return "", "", err
	}
	return credentials.Kind(strings.ToLower(kind)), email, nil
}

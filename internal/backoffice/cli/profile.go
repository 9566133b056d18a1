package cli

import (
	"context"
	"os"

	"github.com/greengrove/backoffice/internal/backoffice/models"
)

// ShowProfile prints the stored admin profile.
func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		a.logger.Error(ctx, "error loading profile", "error", err)
		return err
	}

	printlnFn("Name:  " + p.Name)
	printlnFn("Email: " + p.Email)
	printlnFn("Phone: " + p.Phone)
	return nil
}

// SaveProfile prompts for new profile details and stores them.
func (a *App) SaveProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.profiles.Save(ctx, models.Profile{Name: name, Email: email, Phone: phone}); err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn("Profile saved.")
	return nil
}

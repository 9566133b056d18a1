package cli

import (
	"errors"
	"fmt"

	"github.com/greengrove/backoffice/internal/backoffice/models"
	"github.com/greengrove/backoffice/internal/common"
)

// userMessage translates domain errors into the short messages shown in the
// console. Unrecognized errors pass through unchanged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidEmail):
		return "Please enter a valid email."
	case errors.Is(err, common.ErrWeakPassword):
		return "Password must be at least 6 characters."
	case errors.Is(err, common.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, common.ErrDuplicateEmail):
		return "This email is already registered."
	case errors.Is(err, common.ErrEmptyInput):
		return "Enter email and password."
	case errors.Is(err, common.ErrNotFound):
		return "No matching account."
	case errors.Is(err, common.ErrDeactivated):
		return "This account is deactivated."
	case errors.Is(err, common.ErrWrongPassword):
		return "Incorrect password."
	case errors.Is(err, common.ErrNoSelection):
		return "Select an account first."
	case errors.Is(err, common.ErrEmptyName):
		return "Name is required."
	default:
		return err.Error()
	}
}

func formatUser(u models.User) string {
	state := "active"
	if !u.Active {
		state = "deactivated"
	}
	name := u.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf("%-28s %-20s %s", u.Email, name, state)
}

func formatRequest(r models.SellerRequest) string {
	return fmt.Sprintf("%-36s %-20s %-28s %s", r.ID, r.Name, r.Email, r.Status)
}

func formatOrder(o models.Order) string {
	return fmt.Sprintf("%-8s %-20s %8.2f  %s", o.ID, o.Buyer, o.Total, o.Status)
}

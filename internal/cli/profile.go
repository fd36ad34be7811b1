package cli

import (
	"context"
	"fmt"

	"github.com/mareviva/mareviva/internal/models"
)

// currentProfile loads the stored profile, falling back to a view built from
// the account identity when none is stored (possible after a data wipe).
func (a *App) currentProfile(ctx context.Context) *models.UserProfile {
	if p := a.profiles.Profile(ctx, a.current.ID); p != nil {
		return p
	}
	return &models.UserProfile{
		UserID: a.current.ID,
		Name:   a.current.Name,
		Email:  a.current.Email,
	}
}

// ShowProfile prints the profile, falling back to the account identity when
// the user never saved one.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	p := a.currentProfile(ctx)
	fmt.Fprintf(a.out, "Nome: %s\nEmail: %s\n", p.Name, p.Email)
	if p.Address != "" {
		fmt.Fprintf(a.out, "Endereço: %s\n", p.Address)
	}
	return nil
}

// EditProfile re-prompts the profile fields; an empty answer keeps the
// current value. Changing the profile email does not change the login email.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	cur := a.currentProfile(ctx)

	name, err := getSimpleText(a.reader, labelWithDefault("Nome", cur.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = cur.Name
	}

	email, err := getSimpleText(a.reader, labelWithDefault("Email de contato", cur.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = cur.Email
	}

	address, err := getSimpleText(a.reader, labelWithDefault("Endereço", cur.Address), a.out)
	if err != nil {
		return err
	}
	if address == "" {
		address = cur.Address
	}

	res := a.profiles.UpdateProfile(ctx, &models.UserProfile{
		UserID:  a.current.ID,
		Name:    name,
		Email:   email,
		Address: address,
	})
	fmt.Fprintln(a.out, res.Message)
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account. The
// service's result message is printed either way; on success the user still
// has to log in explicitly.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nome", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Senha", a.out)
	if err != nil {
		return err
	}

	res := a.auth.Register(ctx, name, email, password)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login prompts for credentials and authenticates. On success the session is
// persisted on the device and the user stays logged in across restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Senha", a.out)
	if err != nil {
		return err
	}

	res := a.auth.Login(ctx, email, password)
	fmt.Fprintln(a.out, res.Message)
	if res.Success {
		a.current = res.User
		a.profiles.CreateProfileFromUser(ctx, res.User, "")
	}
	return nil
}

// Recover walks through the password recovery flow: request a code for an
// email, verify it, then set a new password.
func (a *App) Recover(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email da conta", a.out)
	if err != nil {
		return err
	}

	sent := a.auth.SendRecoveryCode(ctx, email)
	fmt.Fprintln(a.out, sent.Message)
	if !sent.Success || sent.Code == "" {
		return nil
	}

	code, err := getSimpleText(a.reader, "Código de recuperação", a.out)
	if err != nil {
		return err
	}

	verified := a.auth.VerifyRecoveryCode(ctx, email, code)
	fmt.Fprintln(a.out, verified.Message)
	if !verified.Success {
		return nil
	}

	password, err := getPassword("Nova senha", a.out)
	if err != nil {
		return err
	}

	res := a.auth.ResetPassword(ctx, email, password)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Logout clears the device session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.current = nil
	fmt.Fprintln(a.out, "Você saiu da sua conta.")
	return nil
}

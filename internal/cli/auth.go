package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/adatasks/internal/services"
)

// Register prompts for email, password and full name and creates an account.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, email, password, fullName)
	a.say(services.NewOutcome(err, services.MsgRegistered))
	return nil
}

// Login prompts for credentials and opens a session.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	_, err = a.auth.Login(ctx, email, password)
	a.say(services.NewOutcome(err, services.MsgLoggedIn))
	return nil
}

// Logout closes the current session.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.say(services.NewOutcome(a.auth.Logout(ctx), services.MsgLoggedOut))
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	s, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", s.Email, s.LoginAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Forgot sends the (simulated) recovery email.
func (a *App) Forgot(ctx context.Context, args []string) error {
	email, err := argOrPrompt(a.reader, args, "Enter email", a.out)
	if err != nil {
		return err
	}
	a.say(services.NewOutcome(a.auth.ForgotPassword(ctx, email), services.MsgRecoverySent))
	return nil
}

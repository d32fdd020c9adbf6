package cli

import (
	"context"

	"staffdesk/internal/models"
	"staffdesk/internal/router"
)

func (a *App) getStatus() string {
	if !a.session.Authenticated() {
		return "(guest)"
	}
	s := a.session.Email()
	if a.session.IsAdmin() {
		s += " admin"
	}
	return "(" + s + ")"
}

// Register runs the registration form: collect fields, create the account,
// and land on the verification page like the original flow.
func (a *App) Register(ctx context.Context) error {
	if !a.enter(ctx, router.LocationRegister, router.PageRegister) {
		return nil
	}

	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, firstName, lastName, email, password); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Account created. A verification email was sent to " + email + ".")
	a.navigate(ctx, router.LocationVerifyEmail)
	return nil
}

// Login prompts for credentials and, on success, lands on the profile page.
func (a *App) Login(ctx context.Context) error {
	if !a.enter(ctx, router.LocationLogin, router.PageLogin) {
		return nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err)
		return err
	}

	a.session = sess
	a.navigate(ctx, router.LocationProfile)
	return nil
}

// Verify simulates clicking the verification link for the pending email.
func (a *App) Verify(ctx context.Context) error {
	if err := a.auth.VerifyPendingEmail(ctx); err != nil {
		printlnFn("Verification failed:", err)
		return err
	}

	printlnFn("Email verified successfully! You can now login.")
	a.navigate(ctx, router.LocationLogin)
	return nil
}

// Logout drops the session and returns home. Harmless when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err)
		return err
	}

	a.session = models.Anonymous()
	a.navigate(ctx, router.LocationHome)
	return nil
}

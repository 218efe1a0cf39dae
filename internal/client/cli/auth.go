package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/innovatech/employee-portal/internal/client/models"
	"github.com/innovatech/employee-portal/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getTextDefault = GetTextDefault
var getPassword = GetPassword

// Login prompts for credentials and tries to establish a session. The
// password is wiped right after the attempt, success or failure. Auth
// failures are reported uniformly; the user never learns which step failed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	creds := models.LoginCredentials{Email: email, Password: string(password)}
	common.WipeByteArray(password)

	user, err := a.session.Login(ctx, creds)
	if err != nil {
		printlnFn("Login failed. Check your details.")
		return nil
	}

	printlnFn(fmt.Sprintf("Logged in as %s.", user.DisplayName()))
	a.store.Refresh(ctx)
	a.printStatus()
	printlnFn(fmt.Sprintf("%d employee(s) on record.", len(a.store.Employees())))
	return nil
}

// Logout tears the session down and drops all directory state. It is safe
// to call when no session is active.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	a.store.Reset()
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.session.Current()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(fmt.Sprintf("Logged in as %s <%s>", user.DisplayName(), user.Email))
	return nil
}

// Package cli is the terminal view of the employee portal. It is thin on
// purpose: all session and record-lifecycle state lives in the session and
// directory packages; the CLI only renders it and forwards user intent.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/innovatech/employee-portal/internal/client/api"
	"github.com/innovatech/employee-portal/internal/client/config"
	"github.com/innovatech/employee-portal/internal/client/directory"
	"github.com/innovatech/employee-portal/internal/client/form"
	"github.com/innovatech/employee-portal/internal/client/session"
)

type App struct {
	config  *config.Config
	session *session.Manager
	store   *directory.Store
	form    *form.Controller
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	logger := newLogger()

	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout)
	sess := session.NewManager(apiClient, session.NewFileStore(c.SessionFile), logger)
	f := form.NewController()
	store := directory.NewStore(apiClient, sess, f, logger)

	return &App{
		config:  c,
		session: sess,
		store:   store,
		form:    f,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Employee Portal CLI (type 'help' for commands)")

	if user, ok := a.session.Restore(); ok {
		fmt.Printf("Welcome back, %s\n", user.DisplayName())
		a.store.Refresh(ctx)
		a.printStatus()
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.showLogin, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) showLogin() string {
	if user, ok := a.session.Current(); ok {
		return user.Email
	}
	return "anonymous"
}

// printStatus renders the outcome of the last directory operation, if any.
func (a *App) printStatus() {
	st, ok := a.store.LastStatus()
	if !ok {
		return
	}
	if st.OK {
		fmt.Println("[ok]", st.Message)
	} else {
		fmt.Println("[error]", st.Message)
	}
}

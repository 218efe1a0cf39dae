package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error  { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) List(ctx context.Context) error   { return s.record("list") }
func (s *stubExec) New(ctx context.Context) error    { return s.record("new") }
func (s *stubExec) Select(ctx context.Context, args []string) error {
	return s.record("select " + strings.Join(args, " "))
}
func (s *stubExec) Edit(ctx context.Context) error    { return s.record("edit") }
func (s *stubExec) Delete(ctx context.Context) error  { return s.record("delete") }
func (s *stubExec) Clear(ctx context.Context) error   { return s.record("clear") }
func (s *stubExec) Refresh(ctx context.Context) error { return s.record("refresh") }
func (s *stubExec) WhoAmI(ctx context.Context) error  { return s.record("whoami") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

func runWith(t *testing.T, exec *stubExec, input string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "test" }, scanner)
	return *lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runWith(t, exec, "list\nselect emp-1\nedit\ndelete\nrefresh\nwhoami\nlogout\nexit\n")

	assert.Equal(t, []string{"list", "select emp-1", "edit", "delete", "refresh", "whoami", "logout"}, exec.calls)
}

func TestRunREPL_ShortListAlias(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runWith(t, exec, "l\n")
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &stubExec{}
	out := runWith(t, exec, "frobnicate\nexit\n")

	joined := strings.Join(out, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Empty(t, exec.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		out := runWith(t, &stubExec{loggedIn: false}, "help\nexit\n")
		joined := strings.Join(out, "")
		require.Contains(t, joined, "login, exit")
		assert.NotContains(t, joined, "delete")
	})

	t.Run("authenticated", func(t *testing.T) {
		out := runWith(t, &stubExec{loggedIn: true}, "help\nexit\n")
		assert.Contains(t, strings.Join(out, ""), "logout")
	})
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	exec := &stubExec{}
	runWith(t, exec, "\n\n  \n")
	assert.Empty(t, exec.calls)
}

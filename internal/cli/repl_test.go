package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(call string) { s.calls = append(s.calls, call) }

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Go(ctx context.Context, location string) { s.record("go " + location) }

func (s *stubExec) Register(ctx context.Context) error { s.record("register"); return nil }
func (s *stubExec) Login(ctx context.Context) error    { s.record("login"); return nil }
func (s *stubExec) Verify(ctx context.Context) error   { s.record("verify"); return nil }
func (s *stubExec) Logout(ctx context.Context) error   { s.record("logout"); return nil }
func (s *stubExec) Profile(ctx context.Context) error  { s.record("profile"); return nil }
func (s *stubExec) Export(ctx context.Context) error   { s.record("export"); return nil }

func (s *stubExec) Accounts(ctx context.Context, args []string) error {
	s.record("accounts " + strings.Join(args, " "))
	return nil
}

func (s *stubExec) Departments(ctx context.Context, args []string) error {
	s.record("departments " + strings.Join(args, " "))
	return nil
}

func (s *stubExec) Employees(ctx context.Context, args []string) error {
	s.record("employees " + strings.Join(args, " "))
	return nil
}

func (s *stubExec) Requests(ctx context.Context, args []string) error {
	s.record("requests " + strings.Join(args, " "))
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	saved := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = saved })
	return &lines
}

func runScript(t *testing.T, s *stubExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), s, func() string { return "(test)" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runScript(t, s, "home\nprofile\naccounts delete 3\nrequests add\nexport\nlogout\nexit\n")

	assert.Equal(t, []string{
		"go /",
		"profile",
		"accounts delete 3",
		"requests add",
		"export",
		"logout",
	}, s.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}

	out := runScript(t, s, "frobnicate\nexit\n")

	assert.Empty(t, s.calls)
	joined := strings.Join(out, "")
	assert.Contains(t, joined, "Unknown command: frobnicate")
}

func TestREPL_HelpDependsOnAuthState(t *testing.T) {
	anon := runScript(t, &stubExec{}, "help\nexit\n")
	assert.Contains(t, strings.Join(anon, ""), "register, login")

	authed := runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(authed, ""), "logout")
}

func TestREPL_GoRequiresPath(t *testing.T) {
	s := &stubExec{}

	out := runScript(t, s, "go\ngo /bogus\nexit\n")

	assert.Equal(t, []string{"go /bogus"}, s.calls)
	assert.Contains(t, strings.Join(out, ""), "Usage: go <path>")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runScript(t, s, "home\n")
	assert.Equal(t, []string{"go /"}, s.calls)
}

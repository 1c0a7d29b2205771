package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
}

func (f *fakeExec) rec(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error            { return f.rec("whoami") }
func (f *fakeExec) Users(ctx context.Context) error             { return f.rec("users") }
func (f *fakeExec) Switch(ctx context.Context, id string) error { return f.rec("switch " + id) }
func (f *fakeExec) Seek(ctx context.Context) error              { return f.rec("seek") }
func (f *fakeExec) Carry(ctx context.Context) error             { return f.rec("carry") }
func (f *fakeExec) Matches(ctx context.Context) error           { return f.rec("matches") }
func (f *fakeExec) Request(ctx context.Context, id string) error {
	return f.rec("request " + id)
}
func (f *fakeExec) Propose(ctx context.Context, id string) error {
	return f.rec("propose " + id)
}
func (f *fakeExec) Deals(ctx context.Context) error              { return f.rec("deals") }
func (f *fakeExec) Accept(ctx context.Context, id string) error  { return f.rec("accept " + id) }
func (f *fakeExec) Advance(ctx context.Context, id string) error { return f.rec("advance " + id) }
func (f *fakeExec) Progress(ctx context.Context, id string) error {
	return f.rec("progress " + id)
}
func (f *fakeExec) Chat(ctx context.Context, id string) error { return f.rec("chat " + id) }
func (f *fakeExec) Send(ctx context.Context, id, text string) error {
	return f.rec("send " + id + " " + text)
}
func (f *fakeExec) Admin(ctx context.Context) error { return f.rec("admin") }

// captureOutput swaps printlnFn and printFn for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"whoami",
		"seek",
		"carry",
		"m",
		"matches",
		"request c1",
		"propose s1",
		"deals",
		"accept d1",
		"advance d1",
		"progress d1",
		"chat d1",
		"send d1 see   you at gate 4",
		"users",
		"switch u2",
		"admin",
		"logout",
		"exit",
		"seek",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), false)

	want := []string{
		"login", "whoami", "seek", "carry", "matches", "matches",
		"request c1", "propose s1", "deals", "accept d1", "advance d1",
		"progress d1", "chat d1", "send d1 see you at gate 4",
		"users", "switch u2", "admin", "logout",
	}
	assert.Equal(t, want, exec.calls, "nothing runs after exit")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("accept\nsend\nfoobar\n\nquit\n"), false)

	assert.Empty(t, exec.calls)
	assert.Equal(t, []string{
		"Usage: accept <dealId>",
		"Usage: send <dealId> <text>",
		"Unknown command: foobar",
		"Bye!",
	}, *out)
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("deals\nadmin"), false)

	assert.Equal(t, []string{"deals", "admin"}, exec.calls, "last line without newline still runs")
	assert.Equal(t, []string{"Error: boom", "Error: boom"}, *out)
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\n"), false)
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, rdr("help\n"), false)

	assert.Equal(t, []string{helpGuest, helpUser}, *out)
}

func TestRunREPL_PromptOnlyWhenInteractive(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(guest)" }, rdr("exit\n"), true)

	assert.Equal(t, []string{"ls (guest)> ", "Bye!"}, *out)
}

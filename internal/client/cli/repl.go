package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context) error
	Switch(ctx context.Context, userID string) error

	Seek(ctx context.Context) error
	Carry(ctx context.Context) error
	Matches(ctx context.Context) error

	Request(ctx context.Context, carrierPostID string) error
	Propose(ctx context.Context, seekerPostID string) error
	Deals(ctx context.Context) error
	Accept(ctx context.Context, dealID string) error
	Advance(ctx context.Context, dealID string) error
	Progress(ctx context.Context, dealID string) error
	Chat(ctx context.Context, dealID string) error
	Send(ctx context.Context, dealID, text string) error

	Admin(ctx context.Context) error
}

const (
	helpGuest = "Available commands: login, users, switch <userId>, admin, exit"
	helpUser  = "Available commands: whoami, seek, carry, (m)atches, request <carrierPostId>, propose <seekerPostId>, " +
		"deals, accept <dealId>, advance <dealId>, progress <dealId>, chat <dealId>, send <dealId> <text>, " +
		"users, switch <userId>, login, logout, admin, exit"
)

// usage lists the commands that need an id argument.
var usage = map[string]string{
	"switch":   "Usage: switch <userId>",
	"request":  "Usage: request <carrierPostId>",
	"propose":  "Usage: propose <seekerPostId>",
	"accept":   "Usage: accept <dealId>",
	"advance":  "Usage: advance <dealId>",
	"progress": "Usage: progress <dealId>",
	"chat":     "Usage: chat <dealId>",
	"send":     "Usage: send <dealId> <text>",
}

// runREPL starts a simple read–eval–print loop for the luggageshare CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. The prompt (status from statusFn) is printed
// only when interactive is set. Command errors are printed and the loop goes
// on. It exits on end of input or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, interactive bool) {
	for {
		if interactive {
			printFn(fmt.Sprintf("ls %s> ", statusFn()))
		}
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		if quit := dispatch(ctx, a, line); quit {
			return
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command line and reports whether the REPL should stop.
func dispatch(ctx context.Context, a execIface, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd, args := parts[0], parts[1:]

	if u, ok := usage[cmd]; ok && len(args) == 0 {
		printlnFn(u)
		return false
	}

	var err error
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpUser)
		} else {
			printlnFn(helpGuest)
		}

	case "login":
		err = a.Login(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "whoami":
		err = a.WhoAmI(ctx)
	case "users":
		err = a.Users(ctx)
	case "switch":
		err = a.Switch(ctx, args[0])

	case "seek":
		err = a.Seek(ctx)
	case "carry":
		err = a.Carry(ctx)
	case "m", "matches":
		err = a.Matches(ctx)

	case "request":
		err = a.Request(ctx, args[0])
	case "propose":
		err = a.Propose(ctx, args[0])
	case "deals":
		err = a.Deals(ctx)
	case "accept":
		err = a.Accept(ctx, args[0])
	case "advance":
		err = a.Advance(ctx, args[0])
	case "progress":
		err = a.Progress(ctx, args[0])
	case "chat":
		err = a.Chat(ctx, args[0])
	case "send":
		err = a.Send(ctx, args[0], strings.Join(args[1:], " "))

	case "admin":
		err = a.Admin(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}

	if err != nil {
		printlnFn("Error:", err)
	}
	return false
}

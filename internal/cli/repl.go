package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, location string)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Verify(ctx context.Context) error
	Logout(ctx context.Context) error
	Accounts(ctx context.Context, args []string) error
	Departments(ctx context.Context, args []string) error
	Employees(ctx context.Context, args []string) error
	Requests(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Export(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Page commands run through the router's guards first, so an anonymous user
// typing "profile" lands on the login page and a non-admin typing "accounts"
// lands back home, exactly like the hash-based navigation they stand in for.
//
// Errors returned by command handlers are ignored here; handlers report their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("staffdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, profile, requests [add|delete <id>], employees, accounts, departments, export, logout, exit")
			} else {
				printlnFn("Available commands: home, register, login, verify, exit")
			}

		case "home":
			a.Go(ctx, "/")

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			a.Go(ctx, args[0])

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "accounts":
			_ = a.Accounts(ctx, args)

		case "departments":
			_ = a.Departments(ctx, args)

		case "employees":
			_ = a.Employees(ctx, args)

		case "requests":
			_ = a.Requests(ctx, args)

		case "export":
			_ = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

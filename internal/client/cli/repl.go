package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isSignedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	Refresh(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop: one command per line,
// dispatched to the App. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	printHelp()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "":
			continue
		case "help":
			printHelp()
		case "signup":
			runCommand(ctx, a.SignUp)
		case "signin":
			runCommand(ctx, a.SignIn)
		case "refresh":
			runCommand(ctx, a.Refresh)
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func runCommand(ctx context.Context, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		printlnFn("Error:", err.Error())
	}
}

func printHelp() {
	printlnFn("Commands: signup, signin, refresh, help, exit")
}

// Package terminal binds a line-oriented read-eval-print loop to the command
// engine. It owns only the I/O: reading lines, printing result lines, and the
// login handshake. All command semantics live in the engine.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	apperrors "github.com/tcacomm/tca-server/internal/errors"
	"github.com/tcacomm/tca-server/internal/service"
)

// Options holds the dependencies for creating a Terminal.
type Options struct {
	Engine *service.Engine
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger
}

// Terminal is a REPL over one user's session. One Terminal serves one
// connection (stdin/stdout in the single-binary mode).
type Terminal struct {
	engine *service.Engine
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	sessionID string
}

// New creates a Terminal.
func New(opts Options) (*Terminal, error) {
	if opts.Engine == nil {
		return nil, errors.New("Engine is required")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("In and Out are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Terminal{
		engine: opts.Engine,
		in:     bufio.NewScanner(opts.In),
		out:    opts.Out,
		logger: logger.With("component", "terminal"),
	}, nil
}

// Run drives the loop until EOF, /quit, or context cancellation. Handler
// failures never stop the loop; they were already rendered as lines.
func (t *Terminal) Run(ctx context.Context) error {
	defer t.endSession(ctx)

	t.println("Terminal Communication Array v2.0")
	t.println("Type /help for available commands.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		if t.sessionID == "" {
			quit, err := t.loginPrompt(ctx)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		t.print("> ")
		line, ok := t.readLine()
		if !ok {
			return t.in.Err()
		}
		// Input is stripped before processing; "  /join x" is the join
		// command, not chat.
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := t.engine.Dispatch(ctx, t.sessionID, line)
		if err != nil {
			t.logger.ErrorContext(ctx, "dispatch failed", "error", err, "code", apperrors.GetCode(err))
			t.println("Error: Service temporarily unavailable. Please try again.")
			continue
		}
		t.printLines(res.Lines)
		if res.SessionEnded {
			t.sessionID = ""
		}
		if res.Quit {
			return nil
		}
	}
}

// loginPrompt runs one round of the logged-out prompt. Slash input is
// dispatched in logged-out mode (/help, /resetpass, /quit work there);
// anything else is treated as a username and followed by a password prompt.
func (t *Terminal) loginPrompt(ctx context.Context) (quit bool, err error) {
	t.print("Username: ")
	line, ok := t.readLine()
	if !ok {
		return true, t.in.Err()
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	if strings.HasPrefix(line, "/") {
		res, dispatchErr := t.engine.Dispatch(ctx, "", line)
		if dispatchErr != nil {
			t.logger.ErrorContext(ctx, "dispatch failed", "error", dispatchErr, "code", apperrors.GetCode(dispatchErr))
			t.println("Error: Service temporarily unavailable. Please try again.")
			return false, nil
		}
		t.printLines(res.Lines)
		return res.Quit, nil
	}

	t.print("Password: ")
	password, ok := t.readLine()
	if !ok {
		return true, t.in.Err()
	}

	sessionID, view, loginErr := t.engine.Login(ctx, line, password)
	if loginErr != nil {
		t.println("Error: Invalid username or password.")
		return false, nil
	}
	t.sessionID = sessionID
	t.println(fmt.Sprintf("Logged in as %s.", view.Username))
	if len(view.VisibleRooms) > 0 {
		t.println("Available rooms:")
		for _, room := range view.VisibleRooms {
			t.println("  - " + room)
		}
	}
	return false, nil
}

func (t *Terminal) endSession(ctx context.Context) {
	if t.sessionID == "" {
		return
	}
	if err := t.engine.Logout(context.WithoutCancel(ctx), t.sessionID); err != nil {
		t.logger.Error("failed to end session", "error", err)
	}
	t.sessionID = ""
}

func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return t.in.Text(), true
}

func (t *Terminal) printLines(lines []string) {
	for _, line := range lines {
		t.println(line)
	}
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.out, s)
}

func (t *Terminal) print(s string) {
	fmt.Fprint(t.out, s)
}

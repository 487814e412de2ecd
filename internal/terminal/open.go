// Package terminal picks a drawing backend and keeps the terminal restorable
// on every exit path.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"taskmenu/internal/session"
	"taskmenu/internal/tcellui"
	"taskmenu/internal/tui"
)

// Backend names accepted by Open.
const (
	BackendBubbletea = "bubbletea"
	BackendTcell     = "tcell"
)

// Backends lists the accepted backend names, default first.
var Backends = []string{BackendBubbletea, BackendTcell}

// ErrUnknownBackend is returned for a backend name Open does not know.
var ErrUnknownBackend = errors.New("unknown terminal backend")

// Terminal is a started-on-demand drawing backend.
type Terminal interface {
	session.Surface
	session.Input
	Restorer

	// Start enters raw mode and the alternate screen.
	Start() error
	// Close leaves them again. Calling it twice is harmless.
	Close() error
}

var isTerminal = term.IsTerminal

// Open returns the named backend, not yet started. Both stdin and stdout must
// be terminals.
func Open(backend string) (Terminal, error) {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("%w: stdin and stdout must be a terminal", session.ErrTerminalIO)
	}

	switch backend {
	case "", BackendBubbletea:
		return tui.New(), nil
	case BackendTcell:
		s, err := tcellui.New()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", session.ErrTerminalIO, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownBackend, backend, Backends)
	}
}

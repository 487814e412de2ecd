// Package session runs the interactive render/poll/dispatch cycle over a
// menu, independent of the terminal library doing the drawing.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"taskmenu/internal/menu"
)

// DefaultTickRate bounds how long one poll waits for input.
const DefaultTickRate = 250 * time.Millisecond

// ErrTerminalIO wraps any rendering or input failure.
var ErrTerminalIO = errors.New("terminal I/O failed")

// Surface draws a menu snapshot.
type Surface interface {
	Render(menu.Snapshot) error
}

// Input yields key events. ok is false when no event arrived within timeout.
type Input interface {
	Poll(timeout time.Duration) (ev KeyEvent, ok bool, err error)
}

// Loop drives a menu until the user quits or confirms a task.
type Loop struct {
	Surface  Surface
	Input    Input
	TickRate time.Duration
	Keys     *KeyMap     // nil uses DefaultKeyMap
	Logger   *log.Logger // nil discards
}

// Run highlights the first entry, then renders, polls and dispatches until an
// outcome is reached. Render and poll failures end the loop immediately.
func (l *Loop) Run(m *menu.Menu) (Outcome, error) {
	tick := l.TickRate
	if tick <= 0 {
		tick = DefaultTickRate
	}
	keys := DefaultKeyMap()
	if l.Keys != nil {
		keys = *l.Keys
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m.SelectFirst()
	logger.Debug("interaction loop started", "entries", m.Len(), "tick", tick)

	for {
		if err := l.Surface.Render(m.Snapshot()); err != nil {
			return Outcome{}, fmt.Errorf("%w: render: %w", ErrTerminalIO, err)
		}

		ev, ok, err := l.Input.Poll(tick)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: poll: %w", ErrTerminalIO, err)
		}
		if !ok {
			continue
		}

		if outcome, done := keys.Dispatch(m, ev); done {
			logger.Debug("interaction loop finished", "outcome", outcome)
			return outcome, nil
		}
	}
}

package session

import (
	"github.com/charmbracelet/bubbles/key"

	"taskmenu/internal/menu"
)

// OutcomeKind is how an interactive session ended.
type OutcomeKind int

const (
	OutcomeQuit OutcomeKind = iota
	OutcomeConfirmed
)

// Outcome is the result of a session: quit, or a confirmed task name.
type Outcome struct {
	Kind OutcomeKind
	Task string
}

// Quit is the outcome of a session the user left.
func Quit() Outcome { return Outcome{Kind: OutcomeQuit} }

// Confirmed is the outcome of a session ending on task.
func Confirmed(task string) Outcome { return Outcome{Kind: OutcomeConfirmed, Task: task} }

// IsConfirmed reports whether a task was chosen.
func (o Outcome) IsConfirmed() bool { return o.Kind == OutcomeConfirmed }

func (o Outcome) String() string {
	if o.IsConfirmed() {
		return "confirmed " + o.Task
	}
	return "quit"
}

// Dispatch applies one key event to the menu. done is true when the event
// ends the session. Only presses are acted on.
func (k KeyMap) Dispatch(m *menu.Menu, ev KeyEvent) (outcome Outcome, done bool) {
	if ev.Kind != KeyPress {
		return Outcome{}, false
	}

	switch {
	case key.Matches(ev, k.Quit):
		return Quit(), true
	case key.Matches(ev, k.Down):
		m.SelectNext()
	case key.Matches(ev, k.Up):
		m.SelectPrev()
	case key.Matches(ev, k.Confirm):
		if e, ok := m.Current(); ok {
			return Confirmed(e.Name), true
		}
	}
	return Outcome{}, false
}

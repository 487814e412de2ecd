package session

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyCode identifies a key independent of the terminal backend.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyUp
	KeyDown
	KeyCtrlC
)

// KeyKind tells presses apart from repeats and releases on terminals that
// report them.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is one key signal read from the input source.
type KeyEvent struct {
	Code KeyCode
	Rune rune // Set when Code is KeyRune
	Kind KeyKind
}

// Press returns a press event for a special key.
func Press(code KeyCode) KeyEvent { return KeyEvent{Code: code} }

// PressRune returns a press event for a printable key.
func PressRune(r rune) KeyEvent { return KeyEvent{Code: KeyRune, Rune: r} }

// String names the key the way key bindings refer to it.
func (k KeyEvent) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}

// KeyMap holds the bindings the loop reacts to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run task")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

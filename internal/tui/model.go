// Package tui is the bubbletea terminal backend. It paints menu snapshots
// pushed by the interaction loop and forwards key presses back to it.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"taskmenu/internal/menu"
	"taskmenu/internal/session"
)

// snapshotMsg carries the menu state to draw next.
type snapshotMsg menu.Snapshot

// AppModel holds the TUI state. It never touches the menu itself; it only
// shows the last snapshot it was sent.
type AppModel struct {
	Snapshot   menu.Snapshot
	Ready      bool // a snapshot has arrived
	WindowSize tea.WindowSizeMsg

	// Components
	Summary viewport.Model
	Help    help.Model

	keys chan<- session.KeyEvent
}

// summaryKeys scroll the summary panel without reaching the loop.
var summaryKeys = viewport.KeyMap{
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll summary")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll summary")),
}

// InitialModel returns a model that forwards key presses to keys.
func InitialModel(keys chan<- session.KeyEvent) AppModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = summaryKeys

	return AppModel{
		Summary: vp,
		Help:    help.New(),
		keys:    keys,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

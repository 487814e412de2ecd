package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskmenu/internal/menu"
	"taskmenu/internal/session"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.layoutSummary()
		return m, nil

	case snapshotMsg:
		prev := m.Snapshot
		m.Snapshot = menu.Snapshot(msg)
		m.Ready = true
		m.layoutSummary()
		if prev.Cursor != m.Snapshot.Cursor {
			m.Summary.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, summaryKeys.PageDown, summaryKeys.PageUp) {
			m.Summary, cmd = m.Summary.Update(msg)
			return m, cmd
		}
		m.forward(translateKey(msg))
		return m, nil
	}

	return m, nil
}

// forward hands ev to the loop. When the loop has fallen behind the key is
// dropped rather than stalling the program.
func (m AppModel) forward(ev session.KeyEvent) {
	if m.keys == nil {
		return
	}
	select {
	case m.keys <- ev:
	default:
	}
}

// layoutSummary sizes the summary viewport to the current frame and refills it.
func (m *AppModel) layoutSummary() {
	f := session.Project(m.Snapshot, m.WindowSize.Width, m.WindowSize.Height)
	m.Summary.Width = f.DetailWidth
	m.Summary.Height = max(f.SummaryHeight-1, 1)
	m.Summary.SetContent(strings.Join(f.Summary, "\n"))
}

// translateKey maps a bubbletea key to the loop's key vocabulary. bubbletea v1
// reports presses only.
func translateKey(msg tea.KeyMsg) session.KeyEvent {
	switch msg.Type {
	case tea.KeyEnter:
		return session.Press(session.KeyEnter)
	case tea.KeyEsc:
		return session.Press(session.KeyEsc)
	case tea.KeyUp:
		return session.Press(session.KeyUp)
	case tea.KeyDown:
		return session.Press(session.KeyDown)
	case tea.KeyCtrlC:
		return session.Press(session.KeyCtrlC)
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return session.PressRune(msg.Runes[0])
		}
	}
	return session.Press(session.KeyUnknown)
}

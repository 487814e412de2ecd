// Package menu holds the task list and its cyclic selection cursor.
package menu

import "taskmenu/internal/model"

// noCursor marks a cursor that has not been placed yet.
const noCursor = -1

// Menu is an ordered, read-only list of entries with a single cursor.
// The zero value is an empty menu.
type Menu struct {
	entries []model.Entry
	cursor  int
}

// New wraps entries with an unset cursor. The slice is not copied; callers
// must not modify it afterwards.
func New(entries []model.Entry) *Menu {
	return &Menu{entries: entries, cursor: noCursor}
}

// Len returns the number of entries.
func (m *Menu) Len() int { return len(m.entries) }

// Entries returns the entries in display order.
func (m *Menu) Entries() []model.Entry { return m.entries }

// Cursor returns the highlighted index and whether one is set.
func (m *Menu) Cursor() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return 0, false
	}
	return m.cursor, true
}

// SelectFirst highlights the first entry. It does nothing on an empty menu.
func (m *Menu) SelectFirst() {
	if len(m.entries) == 0 {
		m.cursor = noCursor
		return
	}
	m.cursor = 0
}

// SelectNext moves the cursor down, wrapping from the last entry to the first.
func (m *Menu) SelectNext() {
	i, ok := m.Cursor()
	switch {
	case !ok:
		m.SelectFirst()
	case i >= len(m.entries)-1:
		m.SelectFirst()
	default:
		m.cursor = i + 1
	}
}

// SelectPrev moves the cursor up, wrapping from the first entry to the last.
func (m *Menu) SelectPrev() {
	i, ok := m.Cursor()
	switch {
	case !ok:
		m.SelectFirst()
	case i == 0:
		m.cursor = len(m.entries) - 1
	default:
		m.cursor = i - 1
	}
}

// Current returns the highlighted entry.
func (m *Menu) Current() (model.Entry, bool) {
	i, ok := m.Cursor()
	if !ok {
		return model.Entry{}, false
	}
	return m.entries[i], true
}

// Description returns the highlighted entry's description, or a fallback text.
func (m *Menu) Description() string {
	e, ok := m.Current()
	if !ok {
		return model.TextItemNotFound
	}
	return e.Description()
}

// Summary returns the highlighted entry's summary, or a fallback text.
func (m *Menu) Summary() string {
	e, ok := m.Current()
	if !ok {
		return model.TextItemNotFound
	}
	return e.SummaryText()
}

// Snapshot is a read-only view of the menu for one rendered frame.
type Snapshot struct {
	Entries     []model.Entry
	Cursor      int // -1 when nothing is highlighted
	Description string
	Summary     string
	Location    string
}

// Selected reports whether row i is the highlighted one.
func (s Snapshot) Selected(i int) bool { return s.Cursor >= 0 && i == s.Cursor }

// Snapshot captures the current state.
func (m *Menu) Snapshot() Snapshot {
	s := Snapshot{
		Entries:     m.entries,
		Cursor:      noCursor,
		Description: m.Description(),
		Summary:     m.Summary(),
	}
	if i, ok := m.Cursor(); ok {
		s.Cursor = i
		s.Location = m.entries[i].Location()
	}
	return s
}

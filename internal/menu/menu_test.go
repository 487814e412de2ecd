package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmenu/internal/model"
)

func newMenu(n int) *Menu {
	entries := make([]model.Entry, n)
	for i := range entries {
		entries[i] = model.Entry{Name: fmt.Sprintf("task-%02d", i)}
	}
	return New(entries)
}

func cursor(t *testing.T, m *Menu) int {
	t.Helper()
	i, ok := m.Cursor()
	require.True(t, ok, "cursor should be set")
	return i
}

// place moves the cursor to i through the public operations.
func place(m *Menu, i int) {
	m.SelectFirst()
	for range i {
		m.SelectNext()
	}
}

func TestSelectFirst(t *testing.T) {
	for l := 1; l <= 5; l++ {
		for start := -1; start < l; start++ {
			m := newMenu(l)
			if start >= 0 {
				place(m, start)
			}
			m.SelectFirst()
			assert.Equal(t, 0, cursor(t, m), "len=%d start=%d", l, start)
		}
	}
}

func TestUnsetCursorBehavesAsSelectFirst(t *testing.T) {
	m := newMenu(3)
	_, ok := m.Cursor()
	assert.False(t, ok)
	m.SelectNext()
	assert.Equal(t, 0, cursor(t, m))

	m = newMenu(3)
	m.SelectPrev()
	assert.Equal(t, 0, cursor(t, m))
}

func TestRingInverse(t *testing.T) {
	for l := 1; l <= 6; l++ {
		for i := 0; i < l; i++ {
			m := newMenu(l)
			place(m, i)

			m.SelectNext()
			m.SelectPrev()
			assert.Equal(t, i, cursor(t, m), "next/prev len=%d i=%d", l, i)

			m.SelectPrev()
			m.SelectNext()
			assert.Equal(t, i, cursor(t, m), "prev/next len=%d i=%d", l, i)
		}
	}
}

func TestFullCycle(t *testing.T) {
	for l := 1; l <= 6; l++ {
		for i := 0; i < l; i++ {
			m := newMenu(l)
			place(m, i)
			for range l {
				m.SelectNext()
				c := cursor(t, m)
				require.True(t, c >= 0 && c < l)
			}
			assert.Equal(t, i, cursor(t, m))

			for range l {
				m.SelectPrev()
			}
			assert.Equal(t, i, cursor(t, m))
		}
	}
}

func TestBoundaries(t *testing.T) {
	m := newMenu(4)
	place(m, 3)
	m.SelectNext()
	assert.Equal(t, 0, cursor(t, m))

	m.SelectPrev()
	assert.Equal(t, 3, cursor(t, m))

	single := newMenu(1)
	single.SelectFirst()
	single.SelectNext()
	assert.Equal(t, 0, cursor(t, single))
	single.SelectPrev()
	assert.Equal(t, 0, cursor(t, single))
}

func TestEmptyMenu(t *testing.T) {
	m := New(nil)
	m.SelectFirst()
	m.SelectNext()
	m.SelectPrev()
	_, ok := m.Cursor()
	assert.False(t, ok)
	_, ok = m.Current()
	assert.False(t, ok)
	assert.Equal(t, model.TextItemNotFound, m.Description())

	var zero Menu
	_, ok = zero.Cursor()
	assert.False(t, ok)
}

func TestTextAccessors(t *testing.T) {
	m := New([]model.Entry{
		{Name: "build", Desc: model.Property{Value: "Builds it", Present: true}},
		{Name: "odd", Desc: model.Property{Value: 3, Present: true}, Summary: model.Property{Value: map[string]any{}, Present: true}},
		{Name: "test"},
	})

	assert.Equal(t, model.TextItemNotFound, m.Description())
	assert.Equal(t, model.TextItemNotFound, m.Summary())

	m.SelectFirst()
	assert.Equal(t, "Builds it", m.Description())
	assert.Equal(t, model.TextSummaryEmpty, m.Summary())

	m.SelectNext()
	assert.Equal(t, model.TextNotAString, m.Description())
	assert.Equal(t, model.TextNotAString, m.Summary())

	m.SelectNext()
	assert.Equal(t, model.TextDescEmpty, m.Description())
	assert.Equal(t, model.TextSummaryEmpty, m.Summary())
}

func TestSnapshot(t *testing.T) {
	m := New([]model.Entry{
		{Name: "build", Desc: model.Property{Value: "Builds it", Present: true}, File: "Taskfile.yml", Line: 3},
		{Name: "test"},
	})

	s := m.Snapshot()
	assert.Equal(t, -1, s.Cursor)
	assert.False(t, s.Selected(0))
	assert.Equal(t, model.TextItemNotFound, s.Description)

	m.SelectFirst()
	s = m.Snapshot()
	assert.Equal(t, 0, s.Cursor)
	assert.True(t, s.Selected(0))
	assert.False(t, s.Selected(1))
	assert.Equal(t, "Builds it", s.Description)
	assert.Equal(t, "Taskfile.yml:3", s.Location)

	m.SelectNext()
	assert.Equal(t, 0, s.Cursor, "snapshot is a value")
	assert.Equal(t, 1, m.Snapshot().Cursor)
}

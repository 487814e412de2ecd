package tcellui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmenu/internal/menu"
	"taskmenu/internal/model"
	"taskmenu/internal/session"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	require.NoError(t, s.Start())
	sim.SetSize(w, h)
	t.Cleanup(s.Restore)
	return s, sim
}

func rowText(sim tcell.Screen, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y) //nolint:staticcheck // read-back for assertions
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(sim tcell.Screen) string {
	_, h := sim.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(sim, y)
	}
	return strings.Join(rows, "\n")
}

// pollKey polls until a key arrives, skipping ticks and non-key events.
func pollKey(t *testing.T, s *Screen) session.KeyEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok, err := s.Poll(20 * time.Millisecond)
		require.NoError(t, err)
		if ok {
			return ev
		}
	}
	t.Fatal("no key event")
	return session.KeyEvent{}
}

func sampleSnapshot() menu.Snapshot {
	m := menu.New([]model.Entry{
		{Name: "build", Desc: model.Property{Value: "Compile everything", Present: true}, File: "Taskfile.yml", Line: 4},
		{Name: "test", Summary: model.Property{Value: "Runs the suite", Present: true}},
	})
	m.SelectFirst()
	return m.Snapshot()
}

func TestRenderPaintsFrame(t *testing.T) {
	s, sim := newSimScreen(t, 100, 24)
	require.NoError(t, s.Render(sampleSnapshot()))

	text := screenText(sim)
	assert.Contains(t, text, "Tasks")
	assert.Contains(t, text, model.IconCursor+" build")
	assert.Contains(t, text, "  test "+model.IconSummary)
	assert.Contains(t, text, "Description "+model.IconLocation+" Taskfile.yml:4")
	assert.Contains(t, text, "Compile everything")
	assert.Contains(t, text, "q/esc quit")

	assert.True(t, strings.HasPrefix(rowText(sim, 0), "┌"))
	assert.True(t, strings.HasPrefix(rowText(sim, 22), "└"))
}

func TestRenderSelectedStyle(t *testing.T) {
	s, sim := newSimScreen(t, 80, 24)
	require.NoError(t, s.Render(sampleSnapshot()))

	_, _, style, _ := sim.GetContent(1, 2) //nolint:staticcheck // read-back for assertions
	assert.Equal(t, selectedStyle, style)
	_, _, style, _ = sim.GetContent(1, 3) //nolint:staticcheck // read-back for assertions
	assert.Equal(t, normalStyle, style)
}

func TestRenderClipsLongSummary(t *testing.T) {
	s, sim := newSimScreen(t, 80, 12)
	m := menu.New([]model.Entry{{
		Name:    "x",
		Summary: model.Property{Value: strings.Repeat("line\n", 40), Present: true},
	}})
	m.SelectFirst()
	require.NoError(t, s.Render(m.Snapshot()))
	assert.Contains(t, screenText(sim), model.IconSummary+" …")
}

func TestPollTranslatesKeys(t *testing.T) {
	s, sim := newSimScreen(t, 80, 24)

	tests := []struct {
		ev   *tcell.EventKey
		want session.KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), session.Press(session.KeyDown)},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), session.Press(session.KeyUp)},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), session.Press(session.KeyEnter)},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.Press(session.KeyEsc)},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), session.Press(session.KeyCtrlC)},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), session.PressRune('q')},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), session.Press(session.KeyUnknown)},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), session.Press(session.KeyUnknown)},
	}
	for _, tt := range tests {
		require.NoError(t, sim.PostEvent(tt.ev))
		assert.Equal(t, tt.want, pollKey(t, s))
	}
}

func TestPollTimesOut(t *testing.T) {
	s, _ := newSimScreen(t, 80, 24)
	// Drain anything queued by Init.
	for {
		_, ok, err := s.Poll(50 * time.Millisecond)
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	start := time.Now()
	_, ok, err := s.Poll(30 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestResizeIsNotAKey(t *testing.T) {
	s, sim := newSimScreen(t, 80, 24)
	require.NoError(t, sim.PostEvent(tcell.NewEventResize(100, 30)))
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)))
	assert.Equal(t, session.Press(session.KeyDown), pollKey(t, s))
}

func TestCloseIsIdempotent(t *testing.T) {
	s, _ := newSimScreen(t, 80, 24)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
	s.Restore()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, _, err := s.Poll(20 * time.Millisecond); err != nil {
			assert.ErrorIs(t, err, ErrClosed)
			return
		}
	}
	t.Fatal("poll kept succeeding after close")
}

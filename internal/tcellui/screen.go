// Package tcellui is the tcell terminal backend.
package tcellui

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"

	"taskmenu/internal/menu"
	"taskmenu/internal/model"
	"taskmenu/internal/session"
)

// ErrClosed is returned by Poll once the screen has been finalised.
var ErrClosed = errors.New("tcell screen closed")

const eventBuffer = 16

var (
	titleStyle    = tcell.StyleDefault.Foreground(tcell.PaletteColor(205)).Bold(true)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(229)).Background(tcell.PaletteColor(57))
	normalStyle   = tcell.StyleDefault
	dimmedStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	borderStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(63))
	activeStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(205))
)

// Screen implements session.Surface and session.Input on a tcell screen.
type Screen struct {
	screen tcell.Screen
	mu     sync.Mutex

	events    chan tcell.Event
	quit      chan struct{}
	started   bool
	closeOnce sync.Once
}

// New creates a screen on the controlling terminal.
func New() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Screen {
	return &Screen{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
}

// Start initialises the screen and begins pumping its events.
func (s *Screen) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.started = true

	go s.pump()
	return nil
}

func (s *Screen) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Render paints s across the whole screen.
func (s *Screen) Render(snap menu.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	f := session.Project(snap, w, h)

	s.screen.Clear()
	s.paint(f)
	s.screen.Show()
	return nil
}

// Poll waits up to timeout for a key press. Resizes repaint from scratch and
// count as no event.
func (s *Screen) Poll(timeout time.Duration) (session.KeyEvent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, open := <-s.events:
		if !open {
			return session.KeyEvent{}, false, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return translateKey(ev), true, nil
		case *tcell.EventResize:
			s.mu.Lock()
			s.screen.Sync()
			s.mu.Unlock()
		}
		return session.KeyEvent{}, false, nil
	case <-timer.C:
		return session.KeyEvent{}, false, nil
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.started {
			s.screen.Fini()
		}
	})
	return nil
}

// Restore is Close for panic and signal paths.
func (s *Screen) Restore() {
	_ = s.Close()
}

func translateKey(ev *tcell.EventKey) session.KeyEvent {
	switch ev.Key() {
	case tcell.KeyEnter:
		return session.Press(session.KeyEnter)
	case tcell.KeyEscape:
		return session.Press(session.KeyEsc)
	case tcell.KeyUp:
		return session.Press(session.KeyUp)
	case tcell.KeyDown:
		return session.Press(session.KeyDown)
	case tcell.KeyCtrlC:
		return session.Press(session.KeyCtrlC)
	case tcell.KeyRune:
		mods := ev.Modifiers()
		switch {
		case mods&tcell.ModCtrl != 0 && ev.Rune() == 'c':
			return session.Press(session.KeyCtrlC)
		case mods&(tcell.ModAlt|tcell.ModCtrl) == 0:
			return session.PressRune(ev.Rune())
		}
	}
	return session.Press(session.KeyUnknown)
}

// paint draws f. The caller holds s.mu.
func (s *Screen) paint(f session.Frame) {
	// Left box: task list
	s.box(0, 0, f.ListWidth+2, f.ListHeight+2, activeStyle)
	s.text(1, 1, f.ListWidth, "Tasks", titleStyle)
	for i, row := range f.Rows {
		style := normalStyle
		if row.Selected {
			style = selectedStyle
		}
		s.text(1, 2+i, f.ListWidth, row.Text, style)
	}

	// Right column: description above summary
	x := f.ListWidth + 2
	s.box(x, 0, f.DetailWidth+2, f.DescHeight+2, borderStyle)
	n := s.text(x+1, 1, f.DetailWidth, "Description", titleStyle)
	if f.Location != "" {
		s.text(x+1+n, 1, f.DetailWidth-n, " "+model.IconLocation+" "+f.Location, dimmedStyle)
	}
	for i, line := range f.Description {
		s.text(x+1, 2+i, f.DetailWidth, line, normalStyle)
	}

	y := f.DescHeight + 2
	s.box(x, y, f.DetailWidth+2, f.SummaryHeight+2, borderStyle)
	s.text(x+1, y+1, f.DetailWidth, "Summary", titleStyle)
	summary := f.Summary
	if room := max(f.SummaryHeight-1, 1); len(summary) > room {
		summary = append(summary[:room-1:room-1], model.IconSummary+" …")
	}
	for i, line := range summary {
		s.text(x+1, y+2+i, f.DetailWidth, line, normalStyle)
	}

	// Footer
	s.text(0, f.Height-1, f.Width, helpLine(f), dimmedStyle)
}

func helpLine(f session.Frame) string {
	parts := make([]string, 0, len(f.Keys))
	for _, k := range f.Keys {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// text writes str at (x, y), clipped to width cells, and returns the number
// of cells used.
func (s *Screen) text(x, y, width int, str string, style tcell.Style) int {
	col := 0
	for _, r := range str {
		w := ansi.StringWidth(string(r))
		if col+w > width {
			break
		}
		s.screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
	return col
}

// box draws a single-line border with the given outer size.
func (s *Screen) box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for cx := x + 1; cx < right; cx++ {
		s.screen.SetContent(cx, y, tcell.RuneHLine, nil, style)
		s.screen.SetContent(cx, bottom, tcell.RuneHLine, nil, style)
	}
	for cy := y + 1; cy < bottom; cy++ {
		s.screen.SetContent(x, cy, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, cy, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, y, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

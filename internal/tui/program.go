package tui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskmenu/internal/menu"
	"taskmenu/internal/session"
)

// ErrExited is returned once the bubbletea program is no longer running.
var ErrExited = errors.New("bubbletea program exited")

// keyBuffer is how many presses may queue up between two polls.
const keyBuffer = 16

// restoreTimeout bounds how long Restore waits for the program to give the
// terminal back.
var restoreTimeout = time.Second

// Program runs an AppModel in its own goroutine. It is the session's
// Surface and Input for the bubbletea backend.
type Program struct {
	prog *tea.Program
	keys chan session.KeyEvent

	started   atomic.Bool
	done      chan struct{}
	err       error
	closeOnce sync.Once
}

// New builds a program in the alternate screen. Extra options are applied
// after the defaults.
func New(opts ...tea.ProgramOption) *Program {
	keys := make(chan session.KeyEvent, keyBuffer)
	m := InitialModel(keys)

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	}, opts...)

	return &Program{
		prog: tea.NewProgram(&m, opts...),
		keys: keys,
		done: make(chan struct{}),
	}
}

// Start enters raw mode and the alternate screen and begins the event loop.
func (p *Program) Start() error {
	if !p.started.CompareAndSwap(false, true) {
		return nil
	}
	go func() {
		_, err := p.prog.Run()
		p.err = err
		close(p.done)
	}()
	return nil
}

// Render sends s to the program to be painted.
func (p *Program) Render(s menu.Snapshot) error {
	if err := p.exited(); err != nil {
		return err
	}
	p.prog.Send(snapshotMsg(s))
	return nil
}

// Poll waits up to timeout for a key press.
func (p *Program) Poll(timeout time.Duration) (session.KeyEvent, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-p.keys:
		return ev, true, nil
	case <-p.done:
		return session.KeyEvent{}, false, p.exited()
	case <-timer.C:
		return session.KeyEvent{}, false, nil
	}
}

// Close quits the program and waits for the terminal to be restored.
func (p *Program) Close() error {
	p.closeOnce.Do(func() {
		if !p.started.Load() {
			close(p.done)
			return
		}
		p.prog.Quit()
		<-p.done
	})

	select {
	case <-p.done:
	default:
		// Restore gave up waiting; the run goroutine still owns err.
		return ErrExited
	}
	if p.err != nil && !errors.Is(p.err, tea.ErrProgramKilled) {
		return p.err
	}
	return nil
}

// Restore kills the program and waits briefly for it to leave raw mode. It
// is meant for panics and signals, where Close may never return.
func (p *Program) Restore() {
	p.closeOnce.Do(func() {
		if !p.started.Load() {
			close(p.done)
			return
		}
		p.prog.Kill()
		select {
		case <-p.done:
		case <-time.After(restoreTimeout):
		}
	})
}

func (p *Program) exited() error {
	select {
	case <-p.done:
		if p.err != nil {
			return fmt.Errorf("%w: %w", ErrExited, p.err)
		}
		return ErrExited
	default:
		return nil
	}
}

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Restorer puts the terminal back the way it was found.
type Restorer interface {
	Restore()
}

// Guard restores an armed terminal exactly once when the process panics or
// is told to terminate.
type Guard struct {
	mu       sync.Mutex
	restorer Restorer
	once     sync.Once

	signals chan os.Signal
	stop    chan struct{}
	exit    func(int)
}

// NewGuard returns a guard that exits the process with status 1 after
// restoring on a signal.
func NewGuard() *Guard {
	return &Guard{
		signals: make(chan os.Signal, 1),
		stop:    make(chan struct{}),
		exit:    os.Exit,
	}
}

// Install starts listening for SIGTERM and SIGHUP.
func (g *Guard) Install() {
	signal.Notify(g.signals, syscall.SIGTERM, syscall.SIGHUP)
	go g.watch()
}

// Stop releases the signal handlers.
func (g *Guard) Stop() {
	signal.Stop(g.signals)
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *Guard) watch() {
	select {
	case <-g.signals:
		g.restore()
		g.exit(1)
	case <-g.stop:
	}
}

// Arm registers r as the terminal to restore.
func (g *Guard) Arm(r Restorer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.restorer = r
}

// Disarm forgets the terminal once it has been closed normally.
func (g *Guard) Disarm() {
	g.Arm(nil)
}

func (g *Guard) restore() {
	g.mu.Lock()
	r := g.restorer
	g.mu.Unlock()
	if r == nil {
		return
	}
	g.once.Do(r.Restore)
}

// Recover must be deferred directly. On panic it restores the terminal and
// re-panics with the same value.
func (g *Guard) Recover() {
	if v := recover(); v != nil {
		g.restore()
		panic(v)
	}
}

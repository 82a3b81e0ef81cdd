package controller

import (
	"context"
	"sync"

	"github.com/lumina-app/lumina/internal/models"
)

// fakeOS stands in for the OS appearance subsystem. Set applies the mode the
// way a successful osascript call would, unless setErr is set. When gate is
// non-nil, Set waits for it to be closed before returning.
type fakeOS struct {
	mu       sync.Mutex
	mode     models.Mode
	readOut  models.Mode // overrides mode for reads when set
	readErr  error
	setErr   error
	gate     chan struct{}
	setStart chan models.Mode
	reads    int
	sets     []models.Mode
}

func (f *fakeOS) Current(context.Context) (models.Mode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return models.ModeLight, f.readErr
	}
	if f.readOut != "" {
		return f.readOut, nil
	}
	return f.mode, nil
}

func (f *fakeOS) Set(_ context.Context, mode models.Mode) error {
	f.mu.Lock()
	f.sets = append(f.sets, mode)
	gate, started := f.gate, f.setStart
	f.mu.Unlock()

	if started != nil {
		started <- mode
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.mode = mode
	return nil
}

func (f *fakeOS) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

func (f *fakeOS) setCalls() []models.Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Mode(nil), f.sets...)
}

type fakeView struct {
	mu    sync.Mutex
	menus []Menu
}

func (v *fakeView) Update(m Menu) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.menus = append(v.menus, m)
}

func (v *fakeView) last() Menu {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.menus) == 0 {
		return Menu{}
	}
	return v.menus[len(v.menus)-1]
}

func (v *fakeView) all() []Menu {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Menu(nil), v.menus...)
}

type note struct {
	title, message string
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (n *fakeNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note{title: title, message: message})
}

func (n *fakeNotifier) all() []note {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]note(nil), n.notes...)
}

type fakeLock struct {
	locked bool
	err    error
}

func (l *fakeLock) TryLock() (bool, error) {
	return l.locked, l.err
}

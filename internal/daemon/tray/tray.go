// Package tray implements the menu-bar icon and menu for the tray app.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
	log "github.com/go-pkgz/lgr"

	"github.com/lumina-app/lumina/internal/daemon/controller"
	"github.com/lumina-app/lumina/internal/models"
)

// Handler receives mode selections from the menu.
type Handler interface {
	RequestModeChange(mode models.Mode)
}

// item is the part of *systray.MenuItem the tray drives.
type item interface {
	SetTitle(title string)
	Check()
	Uncheck()
	Enable()
	Disable()
}

// Tray owns the systray icon and menu for the process lifetime.
type Tray struct {
	handler Handler
	onStart func()
	onExit  func()

	mu      sync.Mutex
	ready   bool
	pending *controller.Menu
	modes   map[models.Mode]item
	current item

	setTooltip func(string)
	setIcon    func(busy bool)
}

// New creates a tray. Nothing is shown until Run.
func New() *Tray {
	return &Tray{
		modes:      make(map[models.Mode]item),
		setTooltip: systray.SetTooltip,
		setIcon: func(busy bool) {
			if busy {
				systray.SetTemplateIcon(BusyIcon(), BusyIcon())
				return
			}
			systray.SetTemplateIcon(NormalIcon(), NormalIcon())
		},
	}
}

// Run shows the tray and blocks until it exits. It must be called from the
// main goroutine. onStart runs once the menu exists; onExit runs on quit.
func (t *Tray) Run(handler Handler, onStart, onExit func()) {
	t.handler = handler
	t.onStart = onStart
	t.onExit = onExit
	systray.Run(t.onReady, t.onQuit)
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	t.setIcon(false)
	t.setTooltip("Lumina")

	light := systray.AddMenuItemCheckbox(controller.LightLabel, "Switch to light appearance", false)
	dark := systray.AddMenuItemCheckbox(controller.DarkLabel, "Switch to dark appearance", false)
	systray.AddSeparator()
	current := systray.AddMenuItem("Current: -", "")
	current.Disable()
	systray.AddSeparator()
	quit := systray.AddMenuItem(controller.QuitLabel, "Quit Lumina")

	t.mu.Lock()
	t.modes[models.ModeLight] = light
	t.modes[models.ModeDark] = dark
	t.current = current
	t.ready = true
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	if pending != nil {
		t.Update(*pending)
	}

	go t.handleClicks(light, dark, quit)

	if t.onStart != nil {
		t.onStart()
	}
}

func (t *Tray) onQuit() {
	if t.onExit != nil {
		t.onExit()
	}
}

func (t *Tray) handleClicks(light, dark, quit *systray.MenuItem) {
	for {
		select {
		case <-light.ClickedCh:
			t.dispatch(models.ModeLight)
		case <-dark.ClickedCh:
			t.dispatch(models.ModeDark)
		case <-quit.ClickedCh:
			log.Printf("[INFO] quit requested from tray")
			systray.Quit()
			return
		}
	}
}

func (t *Tray) dispatch(mode models.Mode) {
	if t.handler == nil {
		return
	}
	t.handler.RequestModeChange(mode)
}

// Update applies a rendered menu to the tray. Before the tray is ready the
// latest menu is kept and applied once the items exist.
func (t *Tray) Update(menu controller.Menu) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		t.pending = &menu
		return
	}

	for _, mi := range menu.Items {
		it, ok := t.modes[mi.Mode]
		if !ok {
			continue
		}
		it.SetTitle(mi.Title)
		if mi.Checked {
			it.Check()
		} else {
			it.Uncheck()
		}
		if mi.Enabled {
			it.Enable()
		} else {
			it.Disable()
		}
	}
	if t.current != nil {
		t.current.SetTitle(menu.Current)
	}
	t.setTooltip(menu.Tooltip)
	t.setIcon(menu.Busy)
}

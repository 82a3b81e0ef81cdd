// Package controller implements the appearance state machine behind the tray
// app: it owns the cached mode and the busy flag, serializes mode changes,
// and reconciles with the OS on a ticker.
//
// All state lives on a single event loop goroutine. Tray clicks, ticks,
// settings reloads and command completions are queued as units of work and
// run in FIFO order; OS commands run off the loop and post their result back.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/lumina-app/lumina/internal/models"
)

// Reader queries the OS appearance.
type Reader interface {
	Current(ctx context.Context) (models.Mode, error)
}

// Writer changes the OS appearance.
type Writer interface {
	Set(ctx context.Context, mode models.Mode) error
}

// View displays a rendered Menu.
type View interface {
	Update(menu Menu)
}

// Notifier shows a fire-and-forget notification.
type Notifier interface {
	Notify(title, message string)
}

// State is the controller's view of the world.
type State struct {
	Mode   models.Mode
	Busy   bool
	Target models.Mode // mode being switched to while Busy
}

// Config wires a Controller to its collaborators.
type Config struct {
	Reader   Reader
	Writer   Writer
	View     View
	Notifier Notifier
	Settings *models.Settings // nil uses defaults
}

const queueSize = 64

// Controller is the single owner of the appearance state.
type Controller struct {
	reader   Reader
	writer   Writer
	view     View
	notifier Notifier

	// loop-owned
	state              State
	interval           time.Duration
	notifications      bool
	reconcileWhileBusy bool

	queue   chan func()
	stopped chan struct{}

	mu       sync.Mutex
	started  bool
	runCtx   context.Context
	cancel   context.CancelFunc
	ticker   *time.Ticker
	stopOnce sync.Once
}

// New creates a controller. Nothing runs until Start.
func New(cfg Config) *Controller {
	settings := cfg.Settings
	if settings == nil {
		settings = models.NewSettings()
	}
	interval := settings.PollInterval
	if interval <= 0 {
		interval = models.DefaultPollInterval
	}

	return &Controller{
		reader:             cfg.Reader,
		writer:             cfg.Writer,
		view:               cfg.View,
		notifier:           cfg.Notifier,
		state:              State{Mode: models.ModeLight},
		interval:           interval,
		notifications:      settings.Notifications,
		reconcileWhileBusy: settings.ReconcileWhileBusy,
		queue:              make(chan func(), queueSize),
		stopped:            make(chan struct{}),
	}
}

// Start performs one synchronous reconciliation read, renders the menu, and
// then starts the event loop and the reconciliation ticker.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return errors.New("controller already started")
	}
	select {
	case <-c.stopped:
		return errors.New("controller is shut down")
	default:
	}
	c.started = true

	c.runCtx, c.cancel = context.WithCancel(ctx)

	c.state.Mode = c.readCurrentMode(c.runCtx)
	c.render()
	log.Printf("[INFO] initial appearance: %s", c.state.Mode)

	c.ticker = time.NewTicker(c.interval)
	go c.run(c.runCtx)
	go c.poll(c.runCtx, c.ticker)
	return nil
}

// Shutdown stops the reconciliation ticker and the event loop. It is safe to
// call more than once, and before Start.
func (c *Controller) Shutdown() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.ticker != nil {
			c.ticker.Stop()
		}
		if c.cancel != nil {
			c.cancel()
		}
		close(c.stopped)
		log.Printf("[DEBUG] controller stopped")
	})
}

// RequestModeChange asks for a switch to target. It is dropped if another
// switch is still in flight.
func (c *Controller) RequestModeChange(target models.Mode) {
	if target != models.ModeLight && target != models.ModeDark {
		log.Printf("[WARN] ignoring request for unknown mode %q", target)
		return
	}
	c.enqueue(func() { c.requestModeChange(target) })
}

// Reconcile queues a reconciliation read, the same work a tick does.
func (c *Controller) Reconcile() {
	c.enqueue(c.reconcile)
}

// ApplySettings updates notification and reconciliation behaviour and the
// ticker period.
func (c *Controller) ApplySettings(s *models.Settings) {
	if s == nil {
		return
	}
	settings := *s
	c.enqueue(func() { c.applySettings(settings) })
}

// Snapshot returns the current state as seen by the event loop. It returns
// the zero State once the controller is shut down.
func (c *Controller) Snapshot() State {
	reply := make(chan State, 1)
	if !c.enqueue(func() { reply <- c.state }) {
		return State{}
	}
	select {
	case s := <-reply:
		return s
	case <-c.stopped:
		return State{}
	}
}

func (c *Controller) enqueue(fn func()) bool {
	select {
	case <-c.stopped:
		return false
	default:
	}
	select {
	case c.queue <- fn:
		return true
	case <-c.stopped:
		return false
	}
}

func (c *Controller) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.Shutdown()
			return
		case fn := <-c.queue:
			fn()
		}
	}
}

func (c *Controller) poll(ctx context.Context, t *time.Ticker) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.enqueue(c.reconcile)
		}
	}
}

// reconcile runs on the loop. The read itself happens off the loop; its
// result is applied when it comes back.
func (c *Controller) reconcile() {
	if c.state.Busy && !c.reconcileWhileBusy {
		log.Printf("[DEBUG] skipping reconciliation while switching to %s", c.state.Target)
		return
	}
	ctx := c.runCtx
	go func() {
		mode := c.readCurrentMode(ctx)
		c.enqueue(func() { c.applyMode(mode) })
	}()
}

// readCurrentMode never fails: any read error degrades to light.
func (c *Controller) readCurrentMode(ctx context.Context) models.Mode {
	mode, err := c.reader.Current(ctx)
	if err != nil {
		log.Printf("[DEBUG] failed to read appearance, assuming light: %v", err)
		return models.ModeLight
	}
	if mode != models.ModeDark {
		return models.ModeLight
	}
	return mode
}

func (c *Controller) applyMode(mode models.Mode) {
	if mode != c.state.Mode {
		log.Printf("[INFO] appearance changed outside lumina: %s -> %s", c.state.Mode, mode)
	}
	c.state.Mode = mode
	c.render()
}

func (c *Controller) requestModeChange(target models.Mode) {
	if c.state.Busy {
		log.Printf("[DEBUG] dropping switch to %s, switch to %s in flight", target, c.state.Target)
		return
	}

	c.state.Busy = true
	c.state.Target = target
	c.render()

	id := uuid.NewString()
	log.Printf("[INFO] switching to %s mode, request %s", target, id)

	ctx := c.runCtx
	go func() {
		err := c.writer.Set(ctx, target)
		c.enqueue(func() { c.finishModeChange(id, target, err) })
	}()
}

func (c *Controller) finishModeChange(id string, target models.Mode, err error) {
	if err != nil {
		log.Printf("[WARN] switch to %s failed, request %s: %v", target, id, err)
		c.notify("Lumina Error", fmt.Sprintf("Failed to switch mode: %v", err))
	} else {
		c.state.Mode = target
		log.Printf("[INFO] switched to %s mode, request %s", target, id)
		c.notify("Lumina", fmt.Sprintf("Switched to %s mode", target.Title()))
	}

	c.state.Busy = false
	c.state.Target = ""
	c.render()
}

func (c *Controller) applySettings(s models.Settings) {
	c.notifications = s.Notifications
	c.reconcileWhileBusy = s.ReconcileWhileBusy

	if s.PollInterval > 0 && s.PollInterval != c.interval {
		log.Printf("[INFO] poll interval changed: %s -> %s", c.interval, s.PollInterval)
		c.interval = s.PollInterval
		c.ticker.Reset(c.interval)
	}
}

func (c *Controller) notify(title, message string) {
	if !c.notifications || c.notifier == nil {
		return
	}
	c.notifier.Notify(title, message)
}

func (c *Controller) render() {
	if c.view == nil {
		return
	}
	c.view.Update(RenderMenu(c.state))
}

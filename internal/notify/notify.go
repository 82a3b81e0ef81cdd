// Package notify shows fire-and-forget desktop notifications.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
	log "github.com/go-pkgz/lgr"
)

// Desktop delivers notifications through the OS notification center.
// Notify never blocks the caller; Wait lets a process that is about to
// exit flush what it already fired.
type Desktop struct {
	send func(title, message string) error
	wg   sync.WaitGroup
}

// NewDesktop creates a notifier backed by beeep.
func NewDesktop() *Desktop {
	return &Desktop{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify shows a notification in the background. Delivery errors are logged.
func (d *Desktop) Notify(title, message string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.send(title, message); err != nil {
			log.Printf("[WARN] failed to show notification %q: %v", title, err)
		}
	}()
}

// Wait blocks until every notification fired so far has been handed off.
func (d *Desktop) Wait() {
	d.wg.Wait()
}

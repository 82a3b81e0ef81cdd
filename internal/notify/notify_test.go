package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesktop_Notify(t *testing.T) {
	var mu sync.Mutex
	var got []string

	d := &Desktop{send: func(title, message string) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, title+": "+message)
		return nil
	}}

	d.Notify("Lumina", "Switched to Dark mode")
	d.Notify("Lumina Error", "Failed to switch mode: not authorized")
	d.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{
		"Lumina: Switched to Dark mode",
		"Lumina Error: Failed to switch mode: not authorized",
	}, got)
}

func TestDesktop_NotifyErrorIsSwallowed(t *testing.T) {
	d := &Desktop{send: func(string, string) error { return errors.New("no notification center") }}
	d.Notify("Lumina", "hello")
	d.Wait()
}

package controller

import (
	"fmt"

	"github.com/lumina-app/lumina/internal/models"
)

// Labels shown in the tray menu.
const (
	LightLabel     = "Light Mode"
	DarkLabel      = "Dark Mode"
	QuitLabel      = "Quit Lumina"
	switchingLabel = " (switching...)"
)

// MenuItem is one mode selector.
type MenuItem struct {
	Mode    models.Mode
	Title   string
	Checked bool
	Enabled bool
}

// Menu is everything the tray displays for a given State.
type Menu struct {
	Items   []MenuItem // Light then Dark, radio semantics
	Current string     // read-only "Current: <Mode>" label
	Tooltip string
	Busy    bool // selects the busy icon variant
}

// RenderMenu builds the tray menu for s. Exactly one item is checked, and
// items are enabled only when no switch is in flight.
func RenderMenu(s State) Menu {
	mode := s.Mode
	if mode != models.ModeDark {
		mode = models.ModeLight
	}

	items := make([]MenuItem, 0, len(models.Modes))
	for _, m := range models.Modes {
		title := modeLabel(m)
		if s.Busy {
			title += switchingLabel
		}
		items = append(items, MenuItem{
			Mode:    m,
			Title:   title,
			Checked: m == mode,
			Enabled: !s.Busy,
		})
	}

	tooltip := fmt.Sprintf("Lumina: %s", mode)
	if s.Busy {
		tooltip = fmt.Sprintf("Lumina: switching to %s...", s.Target)
	}

	return Menu{
		Items:   items,
		Current: fmt.Sprintf("Current: %s", mode.Title()),
		Tooltip: tooltip,
		Busy:    s.Busy,
	}
}

func modeLabel(m models.Mode) string {
	if m == models.ModeDark {
		return DarkLabel
	}
	return LightLabel
}

package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/ui/layout"
)

// Screen is one page of the course TUI, pushed onto the router stack.
type Screen interface {
	// Init returns the command that loads the screen's data, if any.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only; the app draws the header and
	// footer around it.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ModuleScoped is implemented by screens that show part of one course
// module. The header then reads "Module › Title".
type ModuleScoped interface {
	ModuleID() string
}

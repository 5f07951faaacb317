package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

const shieldArt = `   ╭─────────╮
   │  ╭───╮  │
   │  │ ✓ │  │
   │  ╰───╯  │
    ╲       ╱
      ╲───╱`

// glow frames cycle beside the shield
var glowFrames = []string{"·", "•"}

type tickMsg time.Time

// WelcomeScreen is the first-run splash. It introduces the course modules
// and then hands over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	modules      []string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen listing the given module titles. It replaces
// itself with the screen produced by homeFactory.
func New(modules []string, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		modules:     modules,
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// The first key finishes the animation, the next one moves on.
		if w.elapsed < totalDur {
			w.elapsed = totalDur
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(shieldArt)
	if w.elapsed >= phase1End {
		glow := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(glowFrames[w.tickCount%len(glowFrames)])
		lines := strings.Split(rendered, "\n")
		lines[2] = glow + "  " + lines[2] + "  " + glow
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn to use AI safely and spot the signs of trafficking."))
	}

	if w.elapsed >= totalDur {
		if len(w.modules) > 0 {
			sections = append(sections, "", theme.Heading.Render("In this course"))
			for _, m := range w.modules {
				sections = append(sections, theme.Body.Render("• "+m))
			}
		}
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

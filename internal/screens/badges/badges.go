package badges

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/store"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

type badgesLoadedMsg struct {
	EarnedAt map[string]time.Time
	Counts   map[string]int
	Err      error
}

// BadgeCaseScreen shows every module badge, earned or not.
type BadgeCaseScreen struct {
	engine    *progress.Engine
	eventRepo store.EventRepo
	earnedAt  map[string]time.Time
	counts    map[string]int
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*BadgeCaseScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeCaseScreen)(nil)

// New creates a new BadgeCaseScreen. eventRepo supplies earn dates and may
// be nil.
func New(engine *progress.Engine, eventRepo store.EventRepo) *BadgeCaseScreen {
	return &BadgeCaseScreen{
		engine:    engine,
		eventRepo: eventRepo,
		earnedAt:  map[string]time.Time{},
		counts:    map[string]int{},
	}
}

func (s *BadgeCaseScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		s.loaded = true
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		counts, _, err := repo.BadgeCounts(ctx)
		if err != nil {
			return badgesLoadedMsg{Err: err}
		}
		events, err := repo.QueryProgressEvents(ctx, store.QueryOpts{})
		if err != nil {
			return badgesLoadedMsg{Err: err}
		}
		// Oldest first, so the latest earn wins.
		earnedAt := make(map[string]time.Time)
		for _, ev := range events {
			if progress.EventKind(ev.Kind) == progress.EventBadgeEarned {
				earnedAt[ev.BadgeID] = ev.Timestamp
			}
		}
		return badgesLoadedMsg{EarnedAt: earnedAt, Counts: counts}
	}
}

func (s *BadgeCaseScreen) Title() string {
	return "Badges"
}

func (s *BadgeCaseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeCaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.earnedAt = msg.EarnedAt
			s.counts = msg.Counts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.engine.Summary().Modules)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *BadgeCaseScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	report := s.engine.Summary()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\n%d of %d badges earned\n", len(report.Badges), len(report.Modules))))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var rows []string
	for i, m := range report.Modules {
		rows = append(rows, s.renderBadge(m, i == s.selected, cw))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	return b.String()
}

func (s *BadgeCaseScreen) renderBadge(m progress.ModuleReport, selected bool, cw int) string {
	icon, style := "○", theme.Locked
	if m.BadgeEarned {
		icon, style = "🏅", lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	prefix := "  "
	if selected {
		prefix = "▸ "
	}

	line := fmt.Sprintf("%s%s %-20s %s", prefix, icon, m.BadgeID, theme.Hint.Render(m.Title))
	if selected {
		line = theme.Selected.Render(prefix) + strings.TrimPrefix(line, prefix)
	}
	out := style.Render(line)

	if !selected {
		return out
	}

	var detail string
	switch {
	case m.BadgeEarned:
		detail = "Earned"
		if at, ok := s.earnedAt[m.BadgeID]; ok {
			detail += " on " + at.Local().Format("Jan 02, 2006")
		}
		if n := s.counts[m.BadgeID]; n > 1 {
			detail += fmt.Sprintf(" (%d times in all)", n)
		}
	default:
		left := m.Total - m.Completed
		detail = fmt.Sprintf("%d of %d levels done, %d to go", m.Completed, m.Total, left)
	}
	bar := components.ProgressBar{Percent: m.Percent, Width: min(cw-6, 30)}
	return out + "\n      " + theme.Hint.Render(detail) + "\n      " + bar.View()
}

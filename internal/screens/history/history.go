package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/store"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

// maxEvents bounds how much of the log is loaded.
const maxEvents = 500

type historyLoadedMsg struct {
	Events []store.ProgressEventRecord
	Err    error
}

// day groups the progress events of one calendar day.
type day struct {
	date      time.Time
	events    []store.ProgressEventRecord
	completed int
	answered  int
	correct   int
	badges    int
}

// HistoryScreen displays the progress log grouped by day, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	cat       *catalog.Catalog
	days      []day
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. cat is used to show level titles and
// may be nil.
func New(eventRepo store.EventRepo, cat *catalog.Catalog) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		cat:       cat,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		events, err := repo.QueryProgressEvents(context.Background(), store.QueryOpts{
			Limit:  maxEvents,
			Newest: true,
		})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.days = groupByDay(msg.Events)
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
			return s, nil
		case "down", "j":
			if s.selected < len(s.days)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// groupByDay splits newest-first events into per-day groups in local time.
func groupByDay(events []store.ProgressEventRecord) []day {
	var days []day
	for _, ev := range events {
		y, m, d := ev.Timestamp.Local().Date()
		date := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		if len(days) == 0 || !days[len(days)-1].date.Equal(date) {
			days = append(days, day{date: date})
		}
		g := &days[len(days)-1]
		g.events = append(g.events, ev)
		switch progress.EventKind(ev.Kind) {
		case progress.EventLevelCompleted:
			g.completed++
		case progress.EventAnswerRecorded:
			g.answered++
			if ev.Correct {
				g.correct++
			}
		case progress.EventBadgeEarned:
			g.badges++
		}
	}
	return days
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.days) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Open the course map to start learning!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, d := range s.days {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s  %s",
			prefix, d.date.Format("Jan 02, 2006"),
			plural(d.completed, "level"),
			plural(d.answered, "answer"))
		if d.answered > 0 {
			line += fmt.Sprintf(" (%d correct)", d.correct)
		}
		if d.badges > 0 {
			line += "  🏅 " + plural(d.badges, "badge")
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line) + "\n")

		if s.expanded[i] {
			for _, ev := range d.events {
				b.WriteString("      " + s.renderEvent(ev) + "\n")
			}
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderEvent(ev store.ProgressEventRecord) string {
	at := ev.Timestamp.Local().Format("15:04")
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	switch progress.EventKind(ev.Kind) {
	case progress.EventLevelCompleted:
		return dim.Render(at) + " " + theme.Correct.Render("✅ ") + s.levelTitle(ev.LevelID)
	case progress.EventAnswerRecorded:
		mark := theme.Incorrect.Render("✗ ")
		if ev.Correct {
			mark = theme.Correct.Render("✓ ")
		}
		return dim.Render(at) + " " + mark + fmt.Sprintf("%s: %q", s.levelTitle(ev.LevelID), ev.Option)
	case progress.EventBadgeEarned:
		return dim.Render(at) + " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("🏅 "+ev.BadgeID)
	default:
		return dim.Render(at + " " + ev.Kind)
	}
}

func (s *HistoryScreen) levelTitle(id string) string {
	if s.cat != nil {
		if l, _, ok := s.cat.Level(id); ok {
			return l.Title
		}
	}
	return id
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

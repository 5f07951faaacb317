package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/ui/components"
)

// Routes builds the screens reachable from the home menu. A nil route
// disables its menu item.
type Routes struct {
	Level   func(moduleID string, level catalog.Level) screen.Screen
	Course  func() screen.Screen
	Builder func() screen.Screen
	History func() screen.Screen
	Badges  func() screen.Screen
	Report  func() screen.Screen
}

const (
	itemContinue = iota
	itemCourse
	itemBuilder
	itemHistory
	itemBadges
	itemReport
	itemExit
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	engine     *progress.Engine
	routes     Routes
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
	note       string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the learner's progress.
func New(engine *progress.Engine, routes Routes) *HomeScreen {
	h := &HomeScreen{
		engine:     engine,
		routes:     routes,
		menuLabels: []string{"CONTINUE", "COURSE MAP", "PROMPT BUILDER", "HISTORY", "BADGES", "GET HELP", "EXIT"},
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[itemContinue], Action: h.continueCourse, Disabled: routes.Level == nil},
		{Label: h.menuLabels[itemCourse], Disabled: routes.Course == nil},
		{Label: h.menuLabels[itemBuilder], Disabled: routes.Builder == nil},
		{Label: h.menuLabels[itemHistory], Disabled: routes.History == nil},
		{Label: h.menuLabels[itemBadges], Disabled: routes.Badges == nil},
		{Label: h.menuLabels[itemReport], Disabled: routes.Report == nil},
		{Label: h.menuLabels[itemExit], Action: func() tea.Cmd { return tea.Quit }},
	}
	if routes.Course != nil {
		items[itemCourse].Action = push(routes.Course)
	}
	if routes.Builder != nil {
		items[itemBuilder].Action = push(routes.Builder)
	}
	if routes.History != nil {
		items[itemHistory].Action = push(routes.History)
	}
	if routes.Badges != nil {
		items[itemBadges].Action = push(routes.Badges)
	}
	if routes.Report != nil {
		items[itemReport].Action = push(routes.Report)
	}

	h.disabled = make(map[int]bool)
	for i, item := range items {
		if item.Disabled {
			h.disabled[i] = true
		}
	}
	h.menu = components.NewMenu(items)
	return h
}

// continueCourse opens the first level the learner can take next.
func (h *HomeScreen) continueCourse() tea.Cmd {
	moduleID, level, ok := h.nextLevel()
	if !ok {
		h.note = "🎉 You finished every level. Revisit any of them from the course map."
		return nil
	}
	h.note = ""
	s := h.routes.Level(moduleID, level)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) nextLevel() (string, catalog.Level, bool) {
	for _, m := range h.engine.Catalog().Modules() {
		if l, ok := h.engine.NextLevel(m.ID); ok {
			return m.ID, l, true
		}
	}
	return "", catalog.Level{}, false
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		h.note = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)
	report := h.engine.Summary()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(
		report.Completed, report.Total, len(report.Badges), report.Percent, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled))
	}

	if h.note != "" {
		sections = append(sections, renderNote(h.note, cw))
	} else if _, level, ok := h.nextLevel(); ok && h.routes.Level != nil {
		sections = append(sections, renderNote("Up next: "+level.Title, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

package course

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

// OpenFunc builds the screen for a level.
type OpenFunc func(moduleID string, level catalog.Level) screen.Screen

type rowKind int

const (
	rowModuleHeader rowKind = iota
	rowLevel
)

type row struct {
	kind   rowKind
	module catalog.Module
	level  *catalog.Level
}

// CourseScreen displays the course map organized by module. Level states
// are read from the engine on every render so they follow progress made on
// pushed screens.
type CourseScreen struct {
	engine       *progress.Engine
	open         OpenFunc
	rows         []row
	cursor       int
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates a new CourseScreen.
func New(engine *progress.Engine, open OpenFunc) *CourseScreen {
	var rows []row
	for _, m := range engine.Catalog().Modules() {
		rows = append(rows, row{kind: rowModuleHeader, module: m})
		for i := range m.Levels {
			rows = append(rows, row{kind: rowLevel, module: m, level: &m.Levels[i]})
		}
	}

	s := &CourseScreen{
		engine: engine,
		open:   open,
		rows:   rows,
	}
	s.cursor = s.firstLevelRow()
	return s
}

// firstLevelRow returns the row of the first open level, or the first
// level row when everything is completed or locked.
func (s *CourseScreen) firstLevelRow() int {
	first := -1
	for i, r := range s.rows {
		if r.kind != rowLevel {
			continue
		}
		if first < 0 {
			first = i
		}
		if s.state(r) == progress.StateAvailable {
			return i
		}
	}
	return max(first, 0)
}

func (s *CourseScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s.notice = ""
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextModule()
		case "shift+tab":
			s.prevModule()
		case "enter":
			return s, s.selectLevel()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CourseScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	listHeight := height
	if s.notice != "" {
		listHeight -= 2
	}
	s.adjustScroll(listHeight)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowModuleHeader:
			lines = append(lines, s.renderModuleHeader(r.module, width))
		case rowLevel:
			lines = append(lines, s.renderLevelRow(r, i == s.cursor, width))
		}
		visible++
	}

	if s.notice != "" {
		lines = append(lines, "", "  "+lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return strings.Join(lines, "\n")
}

func (s *CourseScreen) Title() string {
	return "Course Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *CourseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Module"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CourseScreen) state(r row) progress.LevelState {
	return s.engine.LevelState(r.module.ID, r.level.ID)
}

// moveCursor moves the cursor by delta, skipping module headers.
func (s *CourseScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLevel {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextModule jumps the cursor to the first level of the next module.
func (s *CourseScreen) nextModule() {
	current := s.rows[s.cursor].module.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLevel && s.rows[i].module.ID != current {
			s.cursor = i
			return
		}
	}
}

// prevModule jumps the cursor to the first level of the previous module.
func (s *CourseScreen) prevModule() {
	current := s.rows[s.cursor].module.ID
	header := -1
	for i := s.cursor - 1; i >= 0; i-- {
		r := s.rows[i]
		if r.kind == rowModuleHeader && r.module.ID != current {
			header = i
			break
		}
	}
	if header < 0 {
		return
	}
	s.cursor = header
	s.moveCursor(1)
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *CourseScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the module header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowModuleHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectLevel opens the level under the cursor unless it is locked.
func (s *CourseScreen) selectLevel() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLevel || r.level == nil {
		return nil
	}
	if s.state(r) == progress.StateLocked {
		s.notice = "🔒 Complete the previous level to unlock this one."
		return nil
	}
	if s.open == nil {
		return nil
	}
	scr := s.open(r.module.ID, *r.level)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

// renderModuleHeader renders a module section header with its progress
// and badge.
func (s *CourseScreen) renderModuleHeader(m catalog.Module, width int) string {
	name := theme.Heading.Render(strings.ToUpper(m.Title))

	pct := s.engine.ModuleProgress(m.ID)
	bar := components.NewProgressBar("", pct, true, min(30, max(width/3, 12))).View()

	badge := ""
	if s.engine.HasBadge(m.BadgeID) {
		badge = "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("🏅 "+m.BadgeID)
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(name + "  " + bar + badge)
}

// renderLevelRow renders a single level row.
func (s *CourseScreen) renderLevelRow(r row, selected bool, width int) string {
	if r.level == nil {
		return ""
	}

	state := s.state(r)
	icon := state.Icon()
	label := state.Label()
	kind := r.level.Kind().Label()

	// Calculate column widths
	padding := 4 // left indent
	iconWidth := 3
	kindWidth := 9
	labelWidth := 10
	spacing := 4
	nameWidth := width - padding - iconWidth - kindWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := r.level.Title
	if runes := []rune(name); len(runes) > nameWidth {
		name = string(runes[:nameWidth-1]) + "…"
	}

	var nameStyle, kindStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		kindStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch state {
		case progress.StateCompleted:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			kindStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case progress.StateAvailable:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			kindStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			nameStyle = theme.Locked
			kindStyle = theme.Locked
			labelStyle = theme.Locked
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		kindStyle.Render(fmt.Sprintf("%-*s", kindWidth, kind)),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)
}

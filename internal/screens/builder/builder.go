package builder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

type section int

const (
	sectionRole section = iota
	sectionCheck
	sectionFocus
	sectionStyle
	sectionContent
	sectionCount
)

var sectionNames = [...]string{"Role", "Check", "Focus", "Answer style", "Content"}

// CheckFunc opens the safety check for a finished question.
type CheckFunc func(in advisor.CheckInput) screen.Screen

// BuilderScreen assembles a safe question for an AI helper: pick a role,
// what to check, up to three focus items and an answer style, then paste
// the content.
type BuilderScreen struct {
	b           *promptkit.Builder
	section     section
	focusCursor int
	content     components.TextInput
	template    *promptkit.Template
	showExample bool
	check       CheckFunc
	notice      string
}

var _ screen.Screen = (*BuilderScreen)(nil)
var _ screen.KeyHintProvider = (*BuilderScreen)(nil)

// New creates a builder. check may be nil when no AI helper is configured.
func New(check CheckFunc) *BuilderScreen {
	return &BuilderScreen{
		b:       promptkit.NewBuilder(),
		content: components.NewTextInput("Paste the message, ad or description here", 4000),
		check:   check,
	}
}

func (s *BuilderScreen) Init() tea.Cmd {
	return nil
}

func (s *BuilderScreen) Title() string {
	return "Prompt Builder"
}

func (s *BuilderScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next section"}}
	switch s.section {
	case sectionFocus:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Toggle"},
		)
	case sectionContent:
		if s.check != nil {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check it"})
		}
	default:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Change"},
			layout.KeyHint{Key: "1-3", Description: "Quick question"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Question returns the question as it will be sent: the quick question in
// use, otherwise the built one.
func (s *BuilderScreen) Question() string {
	if s.template != nil {
		return s.template.Text
	}
	return s.b.Build()
}

func (s *BuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.section == sectionContent {
			var cmd tea.Cmd
			s.content, cmd = s.content.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	key := kmsg.String()
	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		return s, s.moveSection(1)
	case "shift+tab":
		return s, s.moveSection(-1)
	}
	s.notice = ""

	if s.section == sectionContent {
		if key == "enter" {
			return s, s.submit()
		}
		var cmd tea.Cmd
		s.content, cmd = s.content.Update(msg)
		return s, cmd
	}

	switch key {
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "up", "k":
		if s.section == sectionFocus && s.focusCursor > 0 {
			s.focusCursor--
		}
	case "down", "j":
		if s.section == sectionFocus && s.focusCursor < len(promptkit.FocusOptions)-1 {
			s.focusCursor++
		}
	case "space", " ":
		if s.section == sectionFocus {
			s.toggleFocus()
		}
	case "1", "2", "3":
		s.useQuickQuestion(int(key[0] - '1'))
	case "?":
		s.showExample = !s.showExample
	}
	return s, nil
}

func (s *BuilderScreen) moveSection(delta int) tea.Cmd {
	s.section = (s.section + section(delta) + sectionCount) % sectionCount
	if s.section == sectionContent {
		return s.content.Focus()
	}
	s.content.Blur()
	return nil
}

// cycle changes the choice of the current section.
func (s *BuilderScreen) cycle(delta int) {
	var err error
	switch s.section {
	case sectionRole:
		err = s.b.SetRole(step(promptkit.Roles, s.b.Role(), delta))
	case sectionCheck:
		err = s.b.SetCheckType(step(promptkit.CheckTypes, s.b.CheckType(), delta))
	case sectionStyle:
		err = s.b.SetStyle(step(promptkit.Styles, s.b.Style(), delta))
	default:
		return
	}
	if err == nil {
		s.template = nil
	}
}

func step[T comparable](choices []T, current T, delta int) T {
	i := slices.Index(choices, current)
	n := len(choices)
	return choices[((i+delta)%n+n)%n]
}

func (s *BuilderScreen) toggleFocus() {
	item := promptkit.FocusOptions[s.focusCursor]
	if _, err := s.b.Toggle(item); err != nil {
		if errors.Is(err, promptkit.ErrFocusFull) {
			s.notice = fmt.Sprintf("Pick at most %d focus items.", promptkit.MaxFocus)
		}
		return
	}
	s.template = nil
}

func (s *BuilderScreen) useQuickQuestion(i int) {
	qs := promptkit.QuickQuestions()
	if i < 0 || i >= len(qs) {
		return
	}
	t := qs[i]
	_ = s.b.SetCheckType(t.Check)
	s.template = &t
}

// submit opens the safety check with the question and the pasted content.
func (s *BuilderScreen) submit() tea.Cmd {
	content := strings.TrimSpace(s.content.Value())
	if content == "" {
		s.notice = "Paste something to check first."
		return nil
	}
	if s.check == nil {
		s.notice = "No AI helper is configured. Copy the question above into your own AI tool."
		return nil
	}
	scr := s.check(advisor.CheckInput{
		Check:    s.b.CheckType(),
		Question: s.Question(),
		Content:  content,
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

func (s *BuilderScreen) View(width, height int) string {
	cw := min(width-4, 76)
	if cw < 20 {
		cw = 20
	}

	var b strings.Builder
	b.WriteString(s.renderChoice(sectionRole, string(s.b.Role())))
	b.WriteString(s.renderChoice(sectionCheck, string(s.b.CheckType())))
	b.WriteString(s.renderFocus())
	b.WriteString(s.renderChoice(sectionStyle, string(s.b.Style())))
	b.WriteString(s.label(sectionContent) + "\n  " + s.content.View() + "\n\n")

	preview := s.Question()
	if v := strings.TrimSpace(s.content.Value()); v != "" {
		preview = promptkit.Fill(preview, v)
	}
	title := "Your question"
	if s.template != nil {
		title = "Quick question: " + s.template.Title
	}
	b.WriteString(theme.Heading.Render(title) + "\n")
	b.WriteString(components.Card(lipgloss.NewStyle().Foreground(theme.Text).Render(preview), cw))
	b.WriteString("\n")

	if s.showExample {
		b.WriteString("\n" + theme.Heading.Render("Example") + "\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(promptkit.Example) + "\n")
		b.WriteString(theme.Hint.Render(promptkit.WhyItWorks) + "\n")
	} else {
		b.WriteString(theme.Hint.Render("Press ? for an example question.") + "\n")
	}

	if s.notice != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (s *BuilderScreen) label(sec section) string {
	name := sectionNames[sec]
	if s.section == sec {
		return theme.Selected.Render("▸ " + name)
	}
	return theme.Unselected.Render("  " + name)
}

func (s *BuilderScreen) renderChoice(sec section, value string) string {
	v := theme.Unselected.Render(value)
	if s.section == sec {
		v = theme.Selected.Render("‹ " + value + " ›")
	}
	return s.label(sec) + ": " + v + "\n"
}

func (s *BuilderScreen) renderFocus() string {
	selected := s.b.Focus()
	var b strings.Builder
	b.WriteString(s.label(sectionFocus))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf(" (%d/%d)", len(selected), promptkit.MaxFocus)) + "\n")

	if s.section != sectionFocus {
		if len(selected) > 0 {
			b.WriteString("    " + theme.Unselected.Render(strings.Join(selected, ", ")) + "\n")
		}
		return b.String()
	}

	for i, item := range promptkit.FocusOptions {
		box := "[ ]"
		if slices.Contains(selected, item) {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, item)
		switch {
		case i == s.focusCursor:
			b.WriteString("  " + theme.Selected.Render("▸ "+line) + "\n")
		case !s.b.CanSelect(item):
			b.WriteString("    " + theme.Locked.Render(line) + "\n")
		default:
			b.WriteString("    " + theme.Unselected.Render(line) + "\n")
		}
	}
	return b.String()
}

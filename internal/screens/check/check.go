package check

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/risk"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/screens/report"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

// Checker runs a safety check.
type Checker interface {
	Check(ctx context.Context, in advisor.CheckInput) (*advisor.Assessment, error)
}

// checkDoneMsg carries the result of the safety check.
type checkDoneMsg struct {
	Assessment *advisor.Assessment
	Err        error
}

// CheckScreen sends pasted material to the AI helper and shows the risk
// gauge with its reasons.
type CheckScreen struct {
	checker Checker
	input   advisor.CheckInput
	spinner spinner.Model
	result  *advisor.Assessment
	err     error
	buttons []components.Button
	focus   int
}

var _ screen.Screen = (*CheckScreen)(nil)
var _ screen.KeyHintProvider = (*CheckScreen)(nil)

// New creates a screen that checks in as soon as it is shown.
func New(checker Checker, in advisor.CheckInput) *CheckScreen {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &CheckScreen{
		checker: checker,
		input:   in,
		spinner: sp,
	}
}

func (s *CheckScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.run())
}

func (s *CheckScreen) run() tea.Cmd {
	checker, in := s.checker, s.input
	return func() tea.Msg {
		a, err := checker.Check(context.Background(), in)
		return checkDoneMsg{Assessment: a, Err: err}
	}
}

func (s *CheckScreen) Title() string {
	return "Safety Check"
}

func (s *CheckScreen) KeyHints() []layout.KeyHint {
	if s.pending() {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	hints := []layout.KeyHint{}
	if s.err != nil && !s.refused() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retry"})
	}
	if len(s.buttons) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Choose"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *CheckScreen) pending() bool {
	return s.result == nil && s.err == nil
}

// refused reports whether the model declined to look at the material.
func (s *CheckScreen) refused() bool {
	var r *llm.ErrRefused
	return errors.As(s.err, &r)
}

func (s *CheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case checkDoneMsg:
		s.result, s.err = msg.Assessment, msg.Err
		switch {
		case s.result != nil:
			s.setButtons(s.result.Score.Band == risk.High)
		case s.refused():
			s.setButtons(true)
		}
		return s, nil

	case spinner.TickMsg:
		if !s.pending() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			if s.err != nil && !s.refused() {
				s.err = nil
				return s, tea.Batch(s.spinner.Tick, s.run())
			}
		case "left", "right", "tab", "shift+tab":
			if len(s.buttons) > 0 {
				s.buttons[s.focus].Active = false
				s.focus = (s.focus + 1) % len(s.buttons)
				s.buttons[s.focus].Active = true
			}
			return s, nil
		}
		if len(s.buttons) > 0 {
			var cmd tea.Cmd
			s.buttons[s.focus], cmd = s.buttons[s.focus].Update(msg)
			return s, cmd
		}
	}
	return s, nil
}

// setButtons offers the help line next to Done. A high-risk result puts
// the focus on the help line.
func (s *CheckScreen) setButtons(highRisk bool) {
	s.buttons = []components.Button{
		components.NewButton("GET HELP", false, func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: report.New()} }
		}),
		components.NewButton("DONE", false, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
	s.focus = 1
	if highRisk {
		s.focus = 0
	}
	s.buttons[s.focus].Active = true
}

func (s *CheckScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)

	var b strings.Builder
	switch {
	case s.refused():
		b.WriteString(theme.Incorrect.Render("The AI helper would not look at this.") + "\n\n")
		b.WriteString(text.Render("Some AI tools refuse distressing material. That does not mean it is safe. "+
			"If you or someone else may be in danger, contact the help line.") + "\n\n")
		b.WriteString(s.renderButtons())
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("The AI helper could not check this.") + "\n\n")
		b.WriteString(text.Render(s.err.Error()) + "\n\n")
		b.WriteString(theme.Hint.Render("Press r to try again."))
	case s.result == nil:
		b.WriteString(s.spinner.View() + " Checking your " + strings.ToLower(string(s.input.Check)) + "...")
	default:
		b.WriteString(s.renderResult(cw))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *CheckScreen) renderResult(cw int) string {
	a := s.result
	text := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(components.Gauge{Score: a.Score, Width: min(cw, 50)}.View() + "\n\n")
	if a.Summary != "" {
		b.WriteString(text.Render(a.Summary) + "\n\n")
	}

	section := func(title string, items []string, bullet string, style lipgloss.Style) {
		if len(items) == 0 {
			return
		}
		b.WriteString(theme.Heading.Render(title) + "\n")
		for _, it := range items {
			b.WriteString(style.Width(cw).Render(bullet+it) + "\n")
		}
		b.WriteString("\n")
	}
	section("Why", a.Reasons, "• ", theme.Unselected)
	quotes := make([]string, len(a.Quotes))
	for i, q := range a.Quotes {
		quotes[i] = "“" + q + "”"
	}
	section("Words that stood out", quotes, "  ", theme.Highlight)
	section("What to do next", a.NextSteps, "→ ", theme.Unselected)

	if a.Model != "" {
		b.WriteString(theme.Hint.Render("Checked by "+a.Model+". AI can be wrong; trust your gut and ask someone you trust.") + "\n\n")
	}

	b.WriteString(s.renderButtons())
	return b.String()
}

func (s *CheckScreen) renderButtons() string {
	var views []string
	for i, btn := range s.buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, btn.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}

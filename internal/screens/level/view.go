package level

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

func (s *LevelScreen) View(width, height int) string {
	cw := min(width-4, 76)
	if cw < 20 {
		cw = 20
	}
	body := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)
	dim := lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(strings.ToUpper(s.level.Kind().Label())))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.level.Title))
	b.WriteString("\n\n")

	if s.level.Body != "" {
		b.WriteString(body.Render(s.level.Body))
		b.WriteString("\n\n")
	}

	switch s.level.Kind() {
	case catalog.KindQuiz:
		b.WriteString(s.renderQuiz(cw))
	case catalog.KindScenario:
		b.WriteString(s.renderScenario(cw))
	case catalog.KindActivity:
		b.WriteString(s.renderActivity(cw))
	}

	b.WriteString("\n")
	if s.completed() {
		b.WriteString(theme.Correct.Render("✅ Completed"))
	} else if s.canComplete() {
		b.WriteString(dim.Render("Press Enter to mark this level complete."))
	}

	if s.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2).
			Render(s.toast))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *LevelScreen) renderQuiz(cw int) string {
	q, _ := s.level.Quiz()
	out := s.mc.View()
	if s.outcome == nil {
		return out
	}

	out += "\n"
	if s.checking {
		return out + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Checking...") + "\n"
	}
	if s.outcome.Correct {
		out += theme.Correct.Render("Correct!") + "\n"
	} else {
		out += theme.Incorrect.Render("Not quite") + "\n"
	}
	if q.Explanation != "" {
		out += lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(q.Explanation) + "\n"
	}
	return out
}

func (s *LevelScreen) renderScenario(cw int) string {
	sc, _ := s.level.Scenario()
	card := lipgloss.NewStyle().
		Width(cw).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Foreground(theme.Text)

	out := card.Render(highlight(sc.Prompt, s.revealed, sc.Highlights)) + "\n\n"
	if !s.revealed {
		return out + theme.Hint.Render("Press r to reveal the analysis.") + "\n"
	}

	if len(sc.Highlights) > 0 {
		out += theme.Heading.Render("Red flags") + "\n"
		for _, h := range sc.Highlights {
			out += theme.Highlight.Render("  ⚠ "+h) + "\n"
		}
		out += "\n"
	}
	if sc.Resolution != "" {
		out += lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(sc.Resolution) + "\n\n"
	}
	if sc.Takeaway != "" {
		out += theme.Correct.Render("Lesson: ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(sc.Takeaway) + "\n"
	}

	switch {
	case s.explaining:
		out += "\n" + theme.Hint.Render("Asking the AI helper...") + "\n"
	case s.aiNote != "":
		out += "\n" + theme.Heading.Render("AI helper") + "\n" +
			lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(s.aiNote) + "\n"
	}
	return out
}

func (s *LevelScreen) renderActivity(cw int) string {
	a, _ := s.level.Activity()
	out := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(a.Instructions) + "\n"
	if s.isBuilderActivity() {
		out += "\n" + theme.Hint.Render("Press b to open the prompt builder.") + "\n"
	}
	return out
}

// highlight marks each phrase in text once the analysis is revealed.
func highlight(text string, revealed bool, phrases []string) string {
	if !revealed {
		return text
	}
	for _, p := range phrases {
		if p == "" {
			continue
		}
		text = strings.ReplaceAll(text, p, theme.Highlight.Render(p))
	}
	return text
}

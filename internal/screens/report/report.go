package report

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/helpline"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

// ReportScreen shows where to report a concern. "x" is a quick exit that
// closes the app at once.
type ReportScreen struct{}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a new ReportScreen.
func New() *ReportScreen {
	return &ReportScreen{}
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Report a Concern"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "x", Description: "Quick exit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "x":
			return s, tea.Quit
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	text := lipgloss.NewStyle().Width(cw).Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(text.Render(helpline.Reassurance) + "\n\n")

	for _, c := range helpline.Contacts() {
		lines := c.Lines()
		b.WriteString(theme.Heading.Render(lines[0]) + "\n")
		for _, l := range lines[1:] {
			b.WriteString(text.Render(l) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.Heading.Render("Privacy & Safety") + "\n")
	for _, tip := range helpline.PrivacyTips() {
		b.WriteString(text.Render("• "+tip) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Incorrect.Render("⚠ " + helpline.Emergency))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

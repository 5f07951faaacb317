package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/screens/badges"
	"github.com/aiaware/aiaware/internal/screens/builder"
	"github.com/aiaware/aiaware/internal/screens/check"
	"github.com/aiaware/aiaware/internal/screens/course"
	"github.com/aiaware/aiaware/internal/screens/history"
	"github.com/aiaware/aiaware/internal/screens/home"
	"github.com/aiaware/aiaware/internal/screens/level"
	"github.com/aiaware/aiaware/internal/screens/report"
	"github.com/aiaware/aiaware/internal/screens/welcome"
	"github.com/aiaware/aiaware/internal/session"
	"github.com/aiaware/aiaware/internal/store"
	"github.com/aiaware/aiaware/internal/ui/layout"
)

// Helper is the AI helper behind safety checks and scenario walkthroughs.
// Both *advisor.Advisor and *advisor.Demo implement it.
type Helper interface {
	Check(ctx context.Context, in advisor.CheckInput) (*advisor.Assessment, error)
	Explain(ctx context.Context, sc *catalog.Scenario) (string, error)
}

// Options configures the interactive app.
type Options struct {
	Session *session.Session
	Events  store.EventRepo // nil hides history
	Helper  Helper          // nil disables checks and explanations
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel. A learner without saved progress
// sees the welcome splash before the home screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var checkFn builder.CheckFunc
	levelOpts := level.Options{}
	if opts.Helper != nil {
		helper := opts.Helper
		checkFn = func(in advisor.CheckInput) screen.Screen {
			return check.New(helper, in)
		}
		levelOpts.Explainer = helper
	}
	newBuilder := func() screen.Screen { return builder.New(checkFn) }
	levelOpts.Builder = newBuilder

	openLevel := func(moduleID string, l catalog.Level) screen.Screen {
		return level.New(opts.Session, moduleID, l, levelOpts)
	}

	routes := home.Routes{
		Level:   openLevel,
		Course:  func() screen.Screen { return course.New(opts.Session.Engine(), openLevel) },
		Builder: newBuilder,
		Badges:  func() screen.Screen { return badges.New(opts.Session.Engine(), opts.Events) },
		Report:  func() screen.Screen { return report.New() },
	}
	if opts.Events != nil {
		events, cat := opts.Events, opts.Session.Engine().Catalog()
		routes.History = func() screen.Screen { return history.New(events, cat) }
	}

	homeScreen := home.New(opts.Session.Engine(), routes)
	var first screen.Screen = homeScreen
	if !opts.Session.Resumed() {
		var titles []string
		for _, m := range opts.Session.Engine().Catalog().Modules() {
			titles = append(titles, m.Title)
		}
		first = welcome.New(titles, func() screen.Screen { return homeScreen })
	}

	return AppModel{
		router: router.New(first),
		sess:   opts.Session,
		logger: logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	engine := m.sess.Engine()
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	if ms, ok := active.(screen.ModuleScoped); ok {
		if mod, ok := engine.Catalog().Module(ms.ModuleID()); ok {
			title = mod.Title + " › " + title
		}
	}

	header := layout.RenderHeader(title, len(engine.EarnedBadges()), engine.OverallProgress(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and saves progress when it exits.
func Run(ctx context.Context, opts Options) error {
	model := newAppModel(opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
	}
	if serr := opts.Session.Save(context.Background()); serr != nil {
		model.logger.Error("failed to save progress", zap.Error(serr))
		if err == nil {
			err = fmt.Errorf("save progress: %w", serr)
		}
	}
	return err
}

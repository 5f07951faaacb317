package level

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/progress"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
	"github.com/aiaware/aiaware/internal/session"
	"github.com/aiaware/aiaware/internal/ui/components"
	"github.com/aiaware/aiaware/internal/ui/layout"
)

// ActivityPromptBuilder is the activity type that opens the prompt builder.
const ActivityPromptBuilder = "prompt-builder"

// Explainer asks an LLM to walk through a scenario.
type Explainer interface {
	Explain(ctx context.Context, sc *catalog.Scenario) (string, error)
}

// Options holds the optional collaborators of a level screen.
type Options struct {
	Explainer Explainer            // nil hides the "ask AI" action
	Builder   func() screen.Screen // opens the prompt builder activity
}

// LevelScreen presents one course level and applies completions and quiz
// answers to the session.
type LevelScreen struct {
	sess     *session.Session
	moduleID string
	level    catalog.Level
	opts     Options

	mc       components.MultiChoice
	outcome  *progress.AnswerOutcome
	checking bool

	revealed   bool
	explaining bool
	aiNote     string

	toast   string
	toastID int
	errMsg  string
}

var _ screen.Screen = (*LevelScreen)(nil)
var _ screen.KeyHintProvider = (*LevelScreen)(nil)
var _ screen.ModuleScoped = (*LevelScreen)(nil)

// New creates a screen for level, which belongs to moduleID.
func New(sess *session.Session, moduleID string, level catalog.Level, opts Options) *LevelScreen {
	s := &LevelScreen{
		sess:     sess,
		moduleID: moduleID,
		level:    level,
		opts:     opts,
	}

	if q, ok := level.Quiz(); ok {
		texts := make([]string, len(q.Options))
		correct := -1
		for i, o := range q.Options {
			texts[i] = o.Text
			if o.Correct && correct < 0 {
				correct = i
			}
		}
		s.mc = components.NewMultiChoice(q.Question, texts, correct)

		// A recorded answer is replayed, never asked again.
		s.lockRecorded()
	}
	return s
}

// lockRecorded shows the answer the engine holds for this level, if any,
// and reports whether there was one.
func (s *LevelScreen) lockRecorded() bool {
	prev, ok := s.sess.Engine().Answer(s.level.ID)
	if !ok {
		return false
	}
	for i, t := range s.mc.Options {
		if t == prev.Option {
			s.mc = s.mc.Lock(i)
		}
	}
	s.outcome = &prev
	return true
}

func (s *LevelScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelScreen) ModuleID() string {
	return s.moduleID
}

func (s *LevelScreen) Title() string {
	return s.level.Title
}

func (s *LevelScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	switch s.level.Kind() {
	case catalog.KindQuiz:
		if !s.mc.Submitted {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓", Description: "Choose"},
				layout.KeyHint{Key: "Enter", Description: "Answer"},
			)
		}
	case catalog.KindScenario:
		if s.revealed {
			hints = append(hints, layout.KeyHint{Key: "r", Description: "Hide analysis"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "r", Description: "Reveal analysis"})
		}
		if s.opts.Explainer != nil {
			hints = append(hints, layout.KeyHint{Key: "e", Description: "Ask AI"})
		}
	case catalog.KindActivity:
		if s.isBuilderActivity() {
			hints = append(hints, layout.KeyHint{Key: "b", Description: "Open builder"})
		}
	}
	if s.canComplete() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Mark complete"})
	}
	if s.completed() {
		hints = append(hints, layout.KeyHint{Key: "n", Description: "Next level"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		s.checking = false
		return s, nil

	case toastExpiredMsg:
		if msg.id == s.toastID {
			s.toast = ""
		}
		return s, nil

	case explainedMsg:
		s.explaining = false
		if msg.Err != nil {
			s.errMsg = "The AI helper is unavailable right now."
			return s, nil
		}
		s.aiNote = msg.Text
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LevelScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.errMsg = ""

	if s.level.Kind() == catalog.KindQuiz && !s.mc.Submitted {
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			return s, s.submitAnswer()
		}
		return s, nil
	}

	switch key {
	case "r":
		if s.level.Kind() == catalog.KindScenario {
			s.revealed = !s.revealed
			if !s.revealed {
				s.aiNote = ""
			}
		}
	case "e":
		return s, s.explain()
	case "b":
		if s.isBuilderActivity() && s.opts.Builder != nil {
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: s.opts.Builder()} }
		}
	case "enter":
		if s.canComplete() {
			return s, s.complete()
		}
	case "n":
		return s, s.next()
	}
	return s, nil
}

// submitAnswer records the chosen option and starts the feedback delay.
func (s *LevelScreen) submitAnswer() tea.Cmd {
	option, _ := s.mc.Chosen()
	badges := len(s.sess.Engine().EarnedBadges())

	out, err := s.sess.Answer(context.Background(), s.level.ID, option)
	if err != nil {
		s.errMsg = describeError(err)
		// The answer may be recorded even though saving failed. It is final.
		if !s.lockRecorded() {
			s.mc.Submitted = false
			s.mc.ChosenIndex = -1
			return nil
		}
	} else {
		s.outcome = &out
	}

	s.checking = true
	feedback := tea.Tick(feedbackDelay, func(time.Time) tea.Msg { return feedbackDoneMsg{} })
	return tea.Batch(feedback, s.badgeToast(badges))
}

// complete marks the level completed and saves progress.
func (s *LevelScreen) complete() tea.Cmd {
	badges := len(s.sess.Engine().EarnedBadges())
	if err := s.sess.Complete(context.Background(), s.level.ID); err != nil {
		s.errMsg = describeError(err)
		if !s.completed() {
			return nil
		}
	}
	return s.badgeToast(badges)
}

// badgeToast shows a toast if a badge was earned since before was counted.
func (s *LevelScreen) badgeToast(before int) tea.Cmd {
	if len(s.sess.Engine().EarnedBadges()) == before {
		return nil
	}
	title := s.moduleID
	if m, ok := s.sess.Engine().Catalog().Module(s.moduleID); ok {
		title = m.Title
	}
	s.toastID++
	s.toast = fmt.Sprintf("🏅 Badge earned: %s", title)
	id := s.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// next replaces this screen with the module's next open level.
func (s *LevelScreen) next() tea.Cmd {
	if !s.completed() {
		return nil
	}
	next, ok := s.sess.Engine().NextLevel(s.moduleID)
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	scr := New(s.sess, s.moduleID, next, s.opts)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: scr} }
}

func (s *LevelScreen) explain() tea.Cmd {
	sc, ok := s.level.Scenario()
	if !ok || s.opts.Explainer == nil || s.explaining {
		return nil
	}
	s.explaining = true
	s.revealed = true
	explainer := s.opts.Explainer
	return func() tea.Msg {
		text, err := explainer.Explain(context.Background(), sc)
		return explainedMsg{Text: text, Err: err}
	}
}

func (s *LevelScreen) completed() bool {
	return s.sess.Engine().IsLevelCompleted(s.level.ID)
}

// canComplete reports whether enter marks the level complete. A quiz must
// be answered first.
func (s *LevelScreen) canComplete() bool {
	if s.completed() {
		return false
	}
	if s.level.Kind() == catalog.KindQuiz {
		return s.mc.Submitted && !s.checking
	}
	return true
}

func (s *LevelScreen) isBuilderActivity() bool {
	a, ok := s.level.Activity()
	return ok && a.Type == ActivityPromptBuilder
}

func describeError(err error) string {
	switch {
	case errors.Is(err, progress.ErrLocked):
		return "Finish the previous level first."
	case errors.Is(err, progress.ErrUnknownOption):
		return "That is not one of the options."
	default:
		return fmt.Sprintf("Could not save: %v", err)
	}
}

package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screens/builder"
	"github.com/aiaware/aiaware/internal/screens/home"
	"github.com/aiaware/aiaware/internal/screens/level"
	"github.com/aiaware/aiaware/internal/screens/welcome"
	"github.com/aiaware/aiaware/internal/session"
	"github.com/aiaware/aiaware/internal/store"
)

func testCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Module{{
		ID: "basics", Title: "AI Basics", BadgeID: "ai-explorer",
		Levels: []catalog.Level{
			{ID: "what-is-ai", Title: "What is AI?", Body: "AI finds patterns in data."},
			{ID: "limits", Title: "What AI gets wrong", Body: "AI can sound sure and still be wrong."},
		},
	}})
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	sess, err := session.Open(context.Background(), testCatalog(), session.Config{})
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return sess
}

// drive feeds msg to the model and follows navigation commands.
func drive(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

// skipIntro dismisses the first-run splash.
func skipIntro(m AppModel) AppModel {
	m = drive(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	return drive(m, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
}

func TestFirstRunShowsWelcome(t *testing.T) {
	m := newAppModel(Options{Session: testSession(t)})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected the splash animation to start")
	}

	m = skipIntro(m)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("welcome should be replaced, depth %d", m.router.Depth())
	}
}

func TestResumedSessionStartsAtHome(t *testing.T) {
	db := filepath.Join(t.TempDir(), "aiaware.db")
	st, err := store.Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	cfg := session.Config{Snapshots: st.SnapshotRepo()}
	first, err := session.Open(context.Background(), testCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Complete(context.Background(), "what-is-ai"); err != nil {
		t.Fatal(err)
	}

	sess, err := session.Open(context.Background(), testCatalog(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	m := newAppModel(Options{Session: sess})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
}

func TestContinueAndCompleteUpdatesHeader(t *testing.T) {
	m := skipIntro(newAppModel(Options{Session: testSession(t)}))
	m = drive(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*level.LevelScreen); !ok {
		t.Fatalf("expected level screen, got %T", m.router.Active())
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.sess.Engine().IsLevelCompleted("what-is-ai") {
		t.Fatal("expected the level to be completed")
	}

	view := m.render()
	if !strings.Contains(view, "AI Basics › What is AI?") {
		t.Errorf("header should name the module of the level:\n%s", view)
	}
	if !strings.Contains(view, "AI Aware") || !strings.Contains(view, "50% done") {
		t.Errorf("header should reflect progress:\n%s", view)
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 1 {
		t.Errorf("expected to be back home, depth %d", m.router.Depth())
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := skipIntro(newAppModel(Options{Session: testSession(t)}))
	hints := m.footerHints(m.router.Active())
	if hints[0].Key != "↑↓" {
		t.Errorf("home hints = %+v", hints)
	}

	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	hints = m.footerHints(m.router.Active())
	if hints[len(hints)-1].Key != "Ctrl+C" || len(hints) < 2 {
		t.Errorf("level hints = %+v", hints)
	}
}

func TestBuilderReachableWithHelper(t *testing.T) {
	m := skipIntro(newAppModel(Options{
		Session: testSession(t),
		Helper:  advisor.NewDemo(advisor.DefaultConfig(), nil),
	}))
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = drive(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := m.router.Active().(*builder.BuilderScreen); !ok {
		t.Fatalf("expected builder screen, got %T", m.router.Active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Session: testSession(t)})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{Session: testSession(t)})
	m = drive(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if strings.Contains(m.render(), "AI Aware") {
		t.Error("expected the size warning instead of the frame")
	}
}

package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/store"
)

// fakeRepo serves canned progress events.
type fakeRepo struct {
	store.EventRepo
	events []store.ProgressEventRecord
	err    error
	opts   store.QueryOpts
}

func (f *fakeRepo) QueryProgressEvents(_ context.Context, opts store.QueryOpts) ([]store.ProgressEventRecord, error) {
	f.opts = opts
	return f.events, f.err
}

func event(at time.Time, kind, level string, correct bool) store.ProgressEventRecord {
	return store.ProgressEventRecord{
		Timestamp: at,
		ProgressEventData: store.ProgressEventData{
			Kind: kind, ModuleID: "signs", LevelID: level, Option: "Pay a fee", Correct: correct,
		},
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.MustNew([]catalog.Module{{
		ID: "signs", Title: "Spot the Signs", BadgeID: "sign-spotter",
		Levels: []catalog.Level{{ID: "intro", Title: "Why it matters"}},
	}})
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestGroupsByDay(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	repo := &fakeRepo{events: []store.ProgressEventRecord{
		event(today, "badge_earned", "", false),
		event(today.Add(-time.Minute), "level_completed", "intro", false),
		event(today.Add(-2*time.Minute), "answer_recorded", "intro", true),
		event(yesterday, "answer_recorded", "intro", false),
	}}
	repo.events[0].BadgeID = "sign-spotter"

	s := New(repo, testCatalog())
	load(t, s)

	if !repo.opts.Newest || repo.opts.Limit != maxEvents {
		t.Errorf("unexpected query options %+v", repo.opts)
	}
	if len(s.days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(s.days))
	}
	d := s.days[0]
	if d.completed != 1 || d.answered != 1 || d.correct != 1 || d.badges != 1 {
		t.Errorf("unexpected counts %+v", d)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Mar 10, 2026") || !strings.Contains(view, "1 level") {
		t.Errorf("unexpected view:\n%s", view)
	}
	if strings.Contains(view, "Why it matters") {
		t.Error("details should be collapsed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = s.View(100, 30)
	if !strings.Contains(view, "Why it matters") || !strings.Contains(view, "🏅 sign-spotter") {
		t.Errorf("expected expanded details:\n%s", view)
	}
}

func TestEmptyAndError(t *testing.T) {
	s := New(&fakeRepo{}, nil)
	if !strings.Contains(s.View(80, 20), "Loading") {
		t.Error("expected loading text before data arrives")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Nothing here yet") {
		t.Error("expected empty state")
	}

	failing := New(&fakeRepo{err: errors.New("disk full")}, nil)
	load(t, failing)
	if !strings.Contains(failing.View(80, 20), "disk full") {
		t.Error("expected error text")
	}
}

func TestUnknownLevelFallsBackToID(t *testing.T) {
	s := New(&fakeRepo{}, nil)
	if got := s.levelTitle("gone"); got != "gone" {
		t.Errorf("levelTitle = %q", got)
	}
}

func TestPlural(t *testing.T) {
	if plural(1, "badge") != "1 badge" || plural(3, "level") != "3 levels" || plural(0, "answer") != "0 answers" {
		t.Error("unexpected plural forms")
	}
}

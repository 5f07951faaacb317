package progress

import (
	"math/rand/v2"
	"testing"
)

func TestIsUnlocked_FirstLevelAlwaysUnlocked(t *testing.T) {
	cat := testCatalog(t)
	e := New(cat)
	for _, m := range cat.Modules() {
		if !e.IsUnlocked(m.ID, m.Levels[0].ID) {
			t.Errorf("first level %q of %q should be unlocked", m.Levels[0].ID, m.ID)
		}
	}
}

func TestIsUnlocked_FreshStore(t *testing.T) {
	e := New(testCatalog(t))
	tests := []struct {
		module, level string
		want          bool
	}{
		{"m1", "L1", true},
		{"m1", "L2", false},
		{"m1", "L3", false},
		{"m2", "L4", true},
		{"m2", "L5", false},
	}
	for _, tt := range tests {
		if got := e.IsUnlocked(tt.module, tt.level); got != tt.want {
			t.Errorf("IsUnlocked(%q, %q) = %v, want %v", tt.module, tt.level, got, tt.want)
		}
	}
}

func TestIsUnlocked_UnknownIDs(t *testing.T) {
	e := New(testCatalog(t))
	tests := []struct {
		name, module, level string
	}{
		{"unknown level", "m1", "nope"},
		{"unknown module", "nope", "L1"},
		{"level in other module", "m2", "L1"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if e.IsUnlocked(tt.module, tt.level) {
				t.Errorf("IsUnlocked(%q, %q) = true, want false", tt.module, tt.level)
			}
			if e.LevelState(tt.module, tt.level) != StateLocked {
				t.Errorf("LevelState(%q, %q) should be locked", tt.module, tt.level)
			}
		})
	}
}

// For every level past the first, unlocked iff the predecessor is completed,
// over random completion subsets.
func TestIsUnlocked_PredecessorProperty(t *testing.T) {
	cat := testCatalog(t)
	var all []string
	for _, m := range cat.Modules() {
		for _, l := range m.Levels {
			all = append(all, l.ID)
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 500; trial++ {
		e := New(cat)
		for _, id := range all {
			if rng.IntN(2) == 0 {
				if err := e.CompleteLevel(id); err != nil {
					t.Fatalf("CompleteLevel(%q): %v", id, err)
				}
			}
		}

		for _, m := range cat.Modules() {
			for i, l := range m.Levels {
				got := e.IsUnlocked(m.ID, l.ID)
				want := i == 0 || e.IsLevelCompleted(m.Levels[i-1].ID)
				if got != want {
					t.Fatalf("trial %d: IsUnlocked(%q) = %v, want %v (completed %v)",
						trial, l.ID, got, want, e.CompletedLevels())
				}
			}
		}
	}
}

// Completing L2 directly unlocks L3 even though L1 was never completed.
func TestIsUnlocked_BypassScenario(t *testing.T) {
	e := New(testCatalog(t))
	if err := e.CompleteLevel("L2"); err != nil {
		t.Fatalf("CompleteLevel(L2): %v", err)
	}
	if !e.IsLevelCompleted("L2") {
		t.Error("L2 should be completed")
	}
	if !e.IsUnlocked("m1", "L3") {
		t.Error("L3 should be unlocked once L2 is completed")
	}
	if e.IsLevelCompleted("L1") {
		t.Error("L1 should not be completed")
	}
	if got := e.LevelState("m1", "L2"); got != StateCompleted {
		t.Errorf("LevelState(L2) = %v, want completed", got.Label())
	}
}

func TestLevelState(t *testing.T) {
	e := New(testCatalog(t))
	_ = e.CompleteLevel("L1")

	tests := []struct {
		level string
		want  LevelState
	}{
		{"L1", StateCompleted},
		{"L2", StateAvailable},
		{"L3", StateLocked},
	}
	for _, tt := range tests {
		if got := e.LevelState("m1", tt.level); got != tt.want {
			t.Errorf("LevelState(%q) = %s, want %s", tt.level, got.Label(), tt.want.Label())
		}
	}
}

func TestLevelState_IconsAndLabels(t *testing.T) {
	for _, s := range []LevelState{StateLocked, StateAvailable, StateCompleted} {
		if s.Icon() == "?" || s.Label() == "Unknown" {
			t.Errorf("state %d has no icon or label", s)
		}
	}
	if LevelState(99).Label() != "Unknown" {
		t.Error("out-of-range state should be Unknown")
	}
}

func TestNextLevel(t *testing.T) {
	e := New(testCatalog(t))

	l, ok := e.NextLevel("m1")
	if !ok || l.ID != "L1" {
		t.Fatalf("NextLevel = %q, %v; want L1", l.ID, ok)
	}
	_ = e.CompleteLevel("L1")
	_ = e.CompleteLevel("L2")
	l, ok = e.NextLevel("m1")
	if !ok || l.ID != "L3" {
		t.Fatalf("NextLevel = %q, %v; want L3", l.ID, ok)
	}
	_ = e.CompleteLevel("L3")
	if _, ok := e.NextLevel("m1"); ok {
		t.Error("finished module should have no next level")
	}
	if _, ok := e.NextLevel("nope"); ok {
		t.Error("unknown module should have no next level")
	}
}

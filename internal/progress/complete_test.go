package progress

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompleteLevel_Idempotent(t *testing.T) {
	once := New(testCatalog(t), WithSessionID("s"))
	twice := New(testCatalog(t), WithSessionID("s"))

	for _, id := range []string{"L1", "L2", "L3"} {
		if err := once.CompleteLevel(id); err != nil {
			t.Fatalf("CompleteLevel(%q): %v", id, err)
		}
		for i := 0; i < 2; i++ {
			if err := twice.CompleteLevel(id); err != nil {
				t.Fatalf("CompleteLevel(%q) #%d: %v", id, i, err)
			}
		}
	}

	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Errorf("state mismatch (-once +twice):\n%s", diff)
	}
}

func TestCompleteLevel_UnknownLevel(t *testing.T) {
	e := New(testCatalog(t))
	err := e.CompleteLevel("nope")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("error = %v, want ErrUnknownLevel", err)
	}
	if len(e.CompletedLevels()) != 0 {
		t.Error("unknown level must not be recorded")
	}
}

func TestCompleteLevel_BadgeAfterAllLevels(t *testing.T) {
	e := New(testCatalog(t))
	for _, id := range []string{"L1", "L2", "L3"} {
		if e.HasBadge("B") {
			t.Fatalf("badge B earned before %q was completed", id)
		}
		if err := e.CompleteLevel(id); err != nil {
			t.Fatalf("CompleteLevel(%q): %v", id, err)
		}
	}
	if got := e.EarnedBadges(); !slices.Contains(got, "B") {
		t.Errorf("EarnedBadges = %v, want to contain B", got)
	}
	if e.HasBadge("C") {
		t.Error("badge C should not be earned")
	}
}

// The badge is earned iff all module levels are completed, in any
// completion order.
func TestCompleteLevel_BadgeInAnyOrder(t *testing.T) {
	ids := []string{"L1", "L2", "L3"}
	for _, order := range permutations(ids) {
		e := New(testCatalog(t))
		for i, id := range order {
			if err := e.CompleteLevel(id); err != nil {
				t.Fatalf("order %v: CompleteLevel(%q): %v", order, id, err)
			}
			wantBadge := i == len(order)-1
			if e.HasBadge("B") != wantBadge {
				t.Fatalf("order %v after %q: HasBadge(B) = %v, want %v",
					order, id, e.HasBadge("B"), wantBadge)
			}
		}
	}
}

func TestCompleteLevel_BadgeOnce(t *testing.T) {
	rec := &recorder{}
	e := New(testCatalog(t), WithObserver(rec))
	_ = e.CompleteLevel("L4")
	_ = e.CompleteLevel("L5")
	_ = e.CompleteLevel("L5")
	_ = e.CompleteLevel("L4")

	var badges int
	for _, ev := range rec.events {
		if ev.Kind == EventBadgeEarned {
			badges++
		}
	}
	if badges != 1 {
		t.Errorf("badge events = %d, want 1", badges)
	}
	if got := e.EarnedBadges(); len(got) != 1 || got[0] != "C" {
		t.Errorf("EarnedBadges = %v, want [C]", got)
	}
}

func TestEarnedBadges_CatalogOrder(t *testing.T) {
	e := New(testCatalog(t))
	for _, id := range []string{"L4", "L5", "L1", "L2", "L3"} {
		_ = e.CompleteLevel(id)
	}
	want := []string{"B", "C"}
	if diff := cmp.Diff(want, e.EarnedBadges()); diff != "" {
		t.Errorf("EarnedBadges mismatch (-want +got):\n%s", diff)
	}
}

func permutations(in []string) [][]string {
	if len(in) <= 1 {
		return [][]string{slices.Clone(in)}
	}
	var out [][]string
	for i := range in {
		rest := make([]string, 0, len(in)-1)
		rest = append(rest, in[:i]...)
		rest = append(rest, in[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{in[i]}, p...))
		}
	}
	return out
}

package report

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/router"
)

func TestViewListsHotline(t *testing.T) {
	view := New().View(100, 40)
	for _, want := range []string{"1-888-373-7888", "Privacy & Safety", "Call 911"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuickExitQuits(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestEscPops(t *testing.T) {
	_, cmd := New().Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

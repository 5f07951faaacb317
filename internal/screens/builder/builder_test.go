package builder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aiaware/aiaware/internal/advisor"
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/router"
	"github.com/aiaware/aiaware/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *BuilderScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

type stubScreen struct{ in advisor.CheckInput }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "" }
func (s *stubScreen) Title() string                          { return "Safety Check" }

func TestDefaultQuestion(t *testing.T) {
	s := New(nil)
	want := promptkit.NewBuilder().Build()
	if got := s.Question(); got != want {
		t.Errorf("Question() = %q, want %q", got, want)
	}
}

func TestCycleChoices(t *testing.T) {
	s := New(nil)

	s.Update(specialKey(tea.KeyRight))
	if s.b.Role() != promptkit.RoleTeacherHelper {
		t.Errorf("role = %q, want teacher helper", s.b.Role())
	}
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if s.b.Role() != promptkit.RoleParentAdvisor {
		t.Errorf("role wrapped to %q, want parent advisor", s.b.Role())
	}

	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyRight))
	if s.b.CheckType() != promptkit.CheckChat {
		t.Errorf("check = %q, want chat", s.b.CheckType())
	}
	if !strings.Contains(s.Question(), "Check this chat") {
		t.Errorf("question does not follow the check type: %q", s.Question())
	}
}

func TestFocusLimit(t *testing.T) {
	s := New(nil)
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyTab))
	if s.section != sectionFocus {
		t.Fatalf("section = %d, want focus", s.section)
	}

	for i := 0; i < 3; i++ {
		s.Update(specialKey(tea.KeySpace))
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(tea.KeySpace))
	if got := s.b.Focus(); len(got) != promptkit.MaxFocus {
		t.Fatalf("focus = %v, want %d items", got, promptkit.MaxFocus)
	}
	if !strings.Contains(s.View(100, 40), "Pick at most 3 focus items.") {
		t.Error("expected focus limit notice")
	}

	// Deselecting frees a slot.
	s.focusCursor = 0
	s.Update(specialKey(tea.KeySpace))
	if got := s.b.Focus(); len(got) != 2 || got[0] != "pressure/urgency" {
		t.Errorf("focus after deselect = %v", got)
	}
}

func TestQuickQuestion(t *testing.T) {
	s := New(nil)
	s.Update(keyPress('2'))

	qs := promptkit.QuickQuestions()
	if s.Question() != qs[1].Text {
		t.Errorf("Question() = %q, want quick question", s.Question())
	}
	if s.b.CheckType() != qs[1].Check {
		t.Errorf("check type = %q, want %q", s.b.CheckType(), qs[1].Check)
	}

	// Changing a choice goes back to the built question.
	s.Update(specialKey(tea.KeyRight))
	if s.template != nil {
		t.Error("expected quick question cleared after a change")
	}
}

func TestSubmitOpensCheck(t *testing.T) {
	var got advisor.CheckInput
	s := New(func(in advisor.CheckInput) screen.Screen {
		got = in
		return &stubScreen{in: in}
	})

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.section != sectionContent {
		t.Fatalf("shift+tab should wrap to content, got %d", s.section)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("empty content should not submit")
	}

	typeText(s, "Pay $200 to start")
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if got.Content != "Pay $200 to start" || got.Check != promptkit.CheckJobAd {
		t.Errorf("unexpected check input %+v", got)
	}
	if !strings.Contains(got.Question, promptkit.Placeholder) {
		t.Errorf("question should still carry the placeholder: %q", got.Question)
	}
	if !strings.Contains(s.View(100, 40), `"""Pay $200 to start"""`) {
		t.Error("expected the filled question in the preview")
	}
}

func TestSubmitWithoutAdvisor(t *testing.T) {
	s := New(nil)
	s.section = sectionContent
	s.content.Focus()
	typeText(s, "hello")
	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("expected no command without an advisor")
	}
	if !strings.Contains(s.notice, "No AI helper") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestExampleToggle(t *testing.T) {
	s := New(nil)
	s.Update(keyPress('?'))
	if !strings.Contains(s.View(100, 40), "Why it works") {
		t.Error("expected example in view")
	}
}

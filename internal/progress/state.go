package progress

// AnswerOutcome is the locked-in result of a learner's first quiz answer.
type AnswerOutcome struct {
	LevelID string `json:"level_id"`
	Option  string `json:"option"`
	Correct bool   `json:"correct"`
}

// State is the session's progression store: completed levels, locked quiz
// answers and earned badges. All three are append-only; State has no
// removal methods.
type State struct {
	completed map[string]bool
	answers   map[string]AnswerOutcome
	badges    map[string]bool
}

// NewState returns an empty progression store.
func NewState() *State {
	return &State{
		completed: make(map[string]bool),
		answers:   make(map[string]AnswerOutcome),
		badges:    make(map[string]bool),
	}
}

func (s *State) isCompleted(levelID string) bool {
	return s.completed[levelID]
}

// markCompleted inserts levelID and reports whether it was newly added.
func (s *State) markCompleted(levelID string) bool {
	if s.completed[levelID] {
		return false
	}
	s.completed[levelID] = true
	return true
}

func (s *State) answer(levelID string) (AnswerOutcome, bool) {
	a, ok := s.answers[levelID]
	return a, ok
}

// lockAnswer stores the first answer for a level. Later calls are ignored.
func (s *State) lockAnswer(a AnswerOutcome) bool {
	if _, ok := s.answers[a.LevelID]; ok {
		return false
	}
	s.answers[a.LevelID] = a
	return true
}

func (s *State) hasBadge(badgeID string) bool {
	return s.badges[badgeID]
}

func (s *State) addBadge(badgeID string) bool {
	if s.badges[badgeID] {
		return false
	}
	s.badges[badgeID] = true
	return true
}

func (s *State) completedCount() int {
	return len(s.completed)
}

package level

import "time"

// feedbackDelay is how long the quiz shows "Checking..." before revealing
// whether the answer was right.
const feedbackDelay = 600 * time.Millisecond

// toastDuration is how long a badge toast stays on screen.
const toastDuration = 3 * time.Second

// feedbackDoneMsg is sent when the feedback delay ends.
type feedbackDoneMsg struct{}

// toastExpiredMsg is sent when the badge toast should disappear. The id
// ignores expiry of a toast that was already replaced.
type toastExpiredMsg struct {
	id int
}

// explainedMsg carries the AI explanation of a scenario.
type explainedMsg struct {
	Text string
	Err  error
}

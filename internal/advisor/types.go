package advisor

import (
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/risk"
)

// CheckInput is one request to assess pasted material.
type CheckInput struct {
	// Check is the kind of material. Defaults to other text.
	Check promptkit.CheckType

	// Question is the safe question to ask. When empty the quick question
	// for Check is used, or a default built question.
	Question string

	// Content is the pasted material. Must not be blank.
	Content string
}

// Assessment is the structured answer to a safety check.
type Assessment struct {
	Check     promptkit.CheckType
	Score     risk.Score
	Label     risk.Band // the model's own label; Score.Band is authoritative
	Reasons   []string
	NextSteps []string
	Quotes    []string
	Summary   string
	Model     string
}

// LabelAgrees reports whether the model's label matches its score band.
func (a *Assessment) LabelAgrees() bool {
	return a.Label == a.Score.Band
}

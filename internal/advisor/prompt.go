package advisor

import (
	"fmt"
	"strings"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/promptkit"
)

const systemPrompt = `You help ordinary people notice possible signs of human trafficking or labor exploitation in material they paste.

Rules:
- Be calm and kind. Use simple words. Never accuse a specific person.
- Judge only what is in the material. If there is too little to tell, say so and keep the score low.
- Warning signs include secrecy, pressure or urgency, no ID or cash-only pay, overnight work, isolation, confiscated documents, debts to an employer, and living where you work.
- Quotes must be copied exactly from the material.
- Next steps are gentle: talk to someone you trust, check the employer, do not share ID or pay fees. Mention calling local emergency services if someone is in immediate danger.
- Follow the style and focus asked for in the question.`

const explainPrompt = `You are a patient teacher in a short course about using AI safely to spot signs of human trafficking. Explain in a short paragraph, in simple words, why the listed red flags matter. Do not invent new facts about the scenario.`

// buildUserMessage fills the question with the pasted content, cut to the
// configured limit.
func buildUserMessage(input CheckInput, cfg Config) string {
	content := strings.TrimSpace(input.Content)
	if cfg.MaxContentRunes > 0 {
		if r := []rune(content); len(r) > cfg.MaxContentRunes {
			content = string(r[:cfg.MaxContentRunes]) + " [truncated]"
		}
	}
	return promptkit.Fill(questionFor(input), content)
}

// questionFor picks the question to send.
func questionFor(input CheckInput) string {
	if q := strings.TrimSpace(input.Question); q != "" {
		return q
	}
	if t, ok := promptkit.QuickQuestion(input.Check); ok {
		return t.Text
	}
	b := promptkit.NewBuilder()
	_ = b.SetCheckType(input.Check)
	_ = b.SetStyle(promptkit.StyleRiskReasons)
	return b.Build()
}

func buildExplainMessage(s *catalog.Scenario) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", s.Prompt)
	b.WriteString("Red flags:\n")
	for i, h := range s.Highlights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h)
	}
	if s.Takeaway != "" {
		fmt.Fprintf(&b, "Lesson: %s\n", s.Takeaway)
	}
	return b.String()
}

package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/risk"
)

// signal is one warning sign the offline demo looks for.
type signal struct {
	reason  string
	phrases []string
}

var demoSignals = []signal{
	{"Asks you to keep things secret.", []string{"secret", "don't tell", "do not tell", "keep quiet"}},
	{"Cash-only pay or no ID needed.", []string{"no id", "cash only", "cash-only", "no papers", "no documents"}},
	{"Asks you to pay money first or take on a debt.", []string{"pay upfront", "deposit", "fee", "debt"}},
	{"Pushes you to decide fast.", []string{"urgent", "today only", "right now", "immediately", "act fast"}},
	{"Overnight work or living where you work.", []string{"overnight", "live on site", "housing provided", "accommodation provided"}},
	{"Moves you away from people or apps you know.", []string{"another app", "telegram", "whatsapp", "come alone", "no phone"}},
	{"Pay that sounds too good to be true.", []string{"easy money", "no experience", "per day"}},
}

var demoNextSteps = []string{
	"Talk it over with someone you trust before you reply.",
	"Do not send ID or pay any fee. Look the employer up on your own.",
}

// DemoResponse builds a canned model answer for offline use with the mock
// provider. It scans content for common warning phrases; it is a teaching
// aid and not a real assessment.
func DemoResponse(content string) llm.MockResponse {
	lower := strings.ToLower(content)
	var reasons, quotes []string
	for _, s := range demoSignals {
		for _, p := range s.phrases {
			if i := strings.Index(lower, p); i >= 0 {
				reasons = append(reasons, s.reason)
				quote := p
				if len(lower) == len(content) {
					quote = content[i : i+len(p)]
				}
				quotes = append(quotes, quote)
				break
			}
		}
	}

	score := 10
	if len(reasons) > 0 {
		score = 15 + 20*len(reasons)
	} else {
		reasons = []string{"No common warning signs found in this text."}
	}
	score = risk.Clamp(score)
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	out := assessmentOutput{
		Risk:      risk.BandFor(score).String(),
		Score:     score,
		Reasons:   reasons,
		NextSteps: demoNextSteps,
		Quotes:    quotes,
		Summary:   fmt.Sprintf("Offline demo check found %d warning sign(s).", len(quotes)),
	}
	if out.Quotes == nil {
		out.Quotes = []string{}
	}
	b, _ := json.Marshal(out)
	return llm.MockResponse{Content: b}
}

// DemoExplanation builds a canned scenario walkthrough for offline use with
// the mock provider, stitched from the scenario's own red flags and lesson.
func DemoExplanation(s *catalog.Scenario) llm.MockResponse {
	var b strings.Builder
	if len(s.Highlights) > 0 {
		b.WriteString("Here is what stands out:\n")
		for _, h := range s.Highlights {
			fmt.Fprintf(&b, "- %q\n", h)
		}
	}
	if s.Resolution != "" {
		b.WriteString(s.Resolution)
		b.WriteString("\n")
	}
	if s.Takeaway != "" {
		b.WriteString("Remember: " + s.Takeaway)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		text = "Take your time, and ask someone you trust if anything feels off."
	}
	raw, _ := json.Marshal(text)
	return llm.MockResponse{Content: raw}
}

// Demo runs checks and explanations offline. Each call queues a canned
// answer on a mock provider and then goes through the regular advisor path,
// so validation and logging behave as they do with a real model.
type Demo struct {
	mu   sync.Mutex
	adv  *Advisor
	mock *llm.MockProvider
}

// NewDemo creates an offline helper.
func NewDemo(cfg Config, logger *zap.Logger) *Demo {
	mock := llm.NewMockProvider()
	return &Demo{adv: New(mock, cfg, logger), mock: mock}
}

// Check answers with DemoResponse for the pasted content.
func (d *Demo) Check(ctx context.Context, input CheckInput) (*Assessment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mock.AddResponse(DemoResponse(input.Content))
	return d.adv.Check(ctx, input)
}

// Explain answers with DemoExplanation for the scenario.
func (d *Demo) Explain(ctx context.Context, s *catalog.Scenario) (string, error) {
	if s == nil {
		return d.adv.Explain(ctx, nil)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mock.AddResponse(DemoExplanation(s))
	return d.adv.Explain(ctx, s)
}

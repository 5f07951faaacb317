// Package advisor asks the configured LLM to assess pasted material for
// signs of trafficking and turns the answer into a risk assessment.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/risk"
)

// ErrEmptyContent is returned when there is nothing to check.
var ErrEmptyContent = errors.New("nothing to check: content is empty")

// Advisor runs safety checks through an LLM provider.
type Advisor struct {
	provider llm.Provider
	config   Config
	logger   *zap.Logger
}

// New creates an Advisor. A nil logger discards logs.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{provider: provider, config: cfg, logger: logger.Named("advisor")}
}

// assessmentOutput is the raw LLM response before validation.
type assessmentOutput struct {
	Risk      string   `json:"risk"`
	Score     int      `json:"score"`
	Reasons   []string `json:"reasons"`
	NextSteps []string `json:"next_steps"`
	Quotes    []string `json:"quotes"`
	Summary   string   `json:"summary"`
}

// Check assesses input.Content and returns a validated Assessment.
func (a *Advisor) Check(ctx context.Context, input CheckInput) (*Assessment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyContent
	}
	if input.Check == "" {
		input.Check = promptkit.CheckOtherText
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeCheck)
	req := llm.UserPrompt(systemPrompt, buildUserMessage(input, a.config))
	req.Schema = AssessmentSchema
	req.MaxTokens = a.config.MaxTokens
	req.Temperature = a.config.Temperature

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("safety check failed: %w", err)
	}

	var raw assessmentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	label, err := risk.ParseBand(raw.Risk)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := &Assessment{
		Check:     input.Check,
		Score:     risk.NewScore(raw.Score),
		Label:     label,
		Reasons:   raw.Reasons,
		NextSteps: raw.NextSteps,
		Quotes:    raw.Quotes,
		Summary:   strings.TrimSpace(raw.Summary),
		Model:     resp.Model,
	}

	for _, v := range a.config.Validators {
		if verr := v.Validate(out, input); verr != nil {
			return nil, verr
		}
	}

	if !out.LabelAgrees() {
		a.logger.Debug("risk label disagrees with score",
			zap.String("label", out.Label.String()),
			zap.Int("score", out.Score.Value),
		)
	}
	a.logger.Info("safety check",
		zap.String("check", input.Check.Slug()),
		zap.Int("score", out.Score.Value),
		zap.String("band", out.Score.Band.String()),
	)
	return out, nil
}

// Explain asks for a short plain-language explanation of a scenario's red
// flags.
func (a *Advisor) Explain(ctx context.Context, s *catalog.Scenario) (string, error) {
	if s == nil {
		return "", errors.New("no scenario to explain")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)
	req := llm.UserPrompt(explainPrompt, buildExplainMessage(s))
	req.MaxTokens = a.config.MaxTokens
	req.Temperature = a.config.Temperature

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("explanation failed: %w", err)
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return strings.TrimSpace(text), nil
}

package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aiaware/aiaware/internal/catalog"
	"github.com/aiaware/aiaware/internal/llm"
	"github.com/aiaware/aiaware/internal/promptkit"
	"github.com/aiaware/aiaware/internal/risk"
)

const jobAd = `Hiring now! Easy money, $400 per day. No ID needed, cash only. Housing provided. Keep this secret from your family.`

func highRiskJSON() json.RawMessage {
	return json.RawMessage(`{
		"risk": "high",
		"score": 85,
		"reasons": ["Cash only and no ID", "Asks for secrecy", "  "],
		"next_steps": ["Talk to someone you trust", "Do not share documents"],
		"quotes": ["No ID needed", "\"keep this secret\"", "we hold your passport"],
		"summary": "Several strong warning signs. "
	}`)
}

func TestCheck_ParsesAndValidates(t *testing.T) {
	defer goleak.VerifyNone(t, ignoreOpenCensus)

	mock := llm.NewMockProvider(llm.MockResponse{Content: highRiskJSON()})
	adv := New(mock, DefaultConfig(), nil)

	got, err := adv.Check(context.Background(), CheckInput{Check: promptkit.CheckJobAd, Content: jobAd})
	require.NoError(t, err)

	assert.Equal(t, promptkit.CheckJobAd, got.Check)
	assert.Equal(t, risk.Score{Value: 85, Band: risk.High}, got.Score)
	assert.True(t, got.LabelAgrees())
	assert.Equal(t, []string{"Cash only and no ID", "Asks for secrecy"}, got.Reasons)
	// The passport quote does not occur in the ad.
	assert.Equal(t, []string{"No ID needed", "\"keep this secret\""}, got.Quotes)
	assert.Equal(t, "Several strong warning signs.", got.Summary)
	assert.Equal(t, "mock", got.Model)
}

func TestCheck_BuildsRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: highRiskJSON()})
	adv := New(mock, DefaultConfig(), nil)

	_, err := adv.Check(context.Background(), CheckInput{Check: promptkit.CheckChat, Content: "  meet me, come alone  "})
	require.NoError(t, err)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, AssessmentSchema, req.Schema)
	assert.Equal(t, 700, req.MaxTokens)
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	msg := req.Messages[0].Content
	assert.True(t, strings.HasPrefix(msg, "You are a safety helper. Check this chat for control or pressure"))
	assert.True(t, strings.HasSuffix(msg, `Chat: """meet me, come alone"""`))
}

func TestCheck_CustomQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: highRiskJSON()})
	adv := New(mock, DefaultConfig(), nil)

	q := promptkit.NewBuilder().Build()
	_, err := adv.Check(context.Background(), CheckInput{Question: q, Content: jobAd})
	require.NoError(t, err)

	req, _ := mock.LastCall()
	assert.Equal(t, promptkit.Fill(q, jobAd), req.Messages[0].Content)
}

func TestCheck_DefaultsToOtherText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: highRiskJSON()})
	adv := New(mock, DefaultConfig(), nil)

	got, err := adv.Check(context.Background(), CheckInput{Content: jobAd})
	require.NoError(t, err)
	assert.Equal(t, promptkit.CheckOtherText, got.Check)

	req, _ := mock.LastCall()
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Check this other text for safety concerns. Give a risk label (low/medium/high) and 3 reasons.")
}

func TestCheck_TruncatesContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: highRiskJSON()})
	cfg := DefaultConfig()
	cfg.MaxContentRunes = 5
	adv := New(mock, cfg, nil)

	_, err := adv.Check(context.Background(), CheckInput{Check: promptkit.CheckOtherText, Content: "héllo world"})
	require.NoError(t, err)

	req, _ := mock.LastCall()
	assert.Contains(t, req.Messages[0].Content, `"""héllo [truncated]"""`)
}

func TestCheck_EmptyContent(t *testing.T) {
	mock := llm.NewMockProvider()
	adv := New(mock, DefaultConfig(), nil)

	_, err := adv.Check(context.Background(), CheckInput{Content: " \n "})
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, 0, mock.CallCount())
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    llm.MockResponse
		wantErr func(error) bool
	}{
		{
			name: "provider error",
			resp: llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
			wantErr: func(err error) bool {
				var rl *llm.ErrRateLimit
				return errors.As(err, &rl) && llm.IsTransient(err)
			},
		},
		{
			name: "schema violation",
			resp: llm.MockResponse{Content: json.RawMessage(`{"risk":"high"}`)},
			wantErr: func(err error) bool {
				var inv *llm.ErrInvalidResponse
				return errors.As(err, &inv)
			},
		},
		{
			name: "no reasons",
			resp: llm.MockResponse{Content: json.RawMessage(`{"risk":"low","score":5,"reasons":[" "],"next_steps":[],"quotes":[],"summary":""}`)},
			wantErr: func(err error) bool {
				var verr *ValidationError
				return errors.As(err, &verr) && verr.Validator == "structural"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := New(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)
			_, err := adv.Check(context.Background(), CheckInput{Content: jobAd})
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error %T: %v", err, err)
		})
	}
}

func TestCheck_ScoreDrivesBand(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	raw := json.RawMessage(`{"risk":"low","score":90,"reasons":["x"],"next_steps":[],"quotes":[],"summary":""}`)
	adv := New(llm.NewMockProvider(llm.MockResponse{Content: raw}), DefaultConfig(), zap.New(core))

	got, err := adv.Check(context.Background(), CheckInput{Content: jobAd})
	require.NoError(t, err)
	assert.Equal(t, 90, got.Score.Value)
	assert.Equal(t, risk.High, got.Score.Band)
	assert.Equal(t, risk.Low, got.Label)
	assert.False(t, got.LabelAgrees())
	assert.Equal(t, 1, logs.FilterMessage("risk label disagrees with score").Len())
	assert.Equal(t, 1, logs.FilterMessage("safety check").Len())
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"  Secrecy keeps people from getting help. "`)})
	adv := New(mock, DefaultConfig(), nil)

	s := &catalog.Scenario{
		Prompt:     "A job ad promises cash and housing.",
		Highlights: []string{"cash only", "housing provided"},
		Takeaway:   "Ask before you go.",
	}
	got, err := adv.Explain(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "Secrecy keeps people from getting help.", got)

	req, _ := mock.LastCall()
	assert.Nil(t, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "1. cash only\n2. housing provided\n")
	assert.Contains(t, req.Messages[0].Content, "Lesson: Ask before you go.")

	_, err = adv.Explain(context.Background(), nil)
	assert.Error(t, err)
}

func TestDemoResponse(t *testing.T) {
	resp := DemoResponse(jobAd)
	require.NoError(t, llm.Validate(AssessmentSchema, resp.Content))

	adv := New(llm.NewMockProvider(resp), DefaultConfig(), nil)
	got, err := adv.Check(context.Background(), CheckInput{Check: promptkit.CheckJobAd, Content: jobAd})
	require.NoError(t, err)
	assert.Equal(t, risk.High, got.Score.Band)
	assert.True(t, got.LabelAgrees())
	assert.Len(t, got.Reasons, 3)
	assert.Contains(t, got.Quotes, "No ID")
	assert.Contains(t, got.Quotes, "secret")
}

func TestDemoResponse_Benign(t *testing.T) {
	resp := DemoResponse("Library volunteers wanted on Saturday mornings.")
	require.NoError(t, llm.Validate(AssessmentSchema, resp.Content))

	adv := New(llm.NewMockProvider(resp), DefaultConfig(), nil)
	got, err := adv.Check(context.Background(), CheckInput{Content: "Library volunteers wanted on Saturday mornings."})
	require.NoError(t, err)
	assert.Equal(t, 10, got.Score.Value)
	assert.Equal(t, risk.Low, got.Score.Band)
	assert.Empty(t, got.Quotes)
}

func TestDemoExplanation(t *testing.T) {
	sc := &catalog.Scenario{
		Prompt:     "Model wanted abroad. We pay your ticket, you pay us back later.",
		Highlights: []string{"pay us back later"},
		Resolution: "A travel debt can be used to control you.",
		Takeaway:   "Never accept a job that starts with a debt.",
	}
	adv := New(llm.NewMockProvider(DemoExplanation(sc)), DefaultConfig(), nil)
	got, err := adv.Explain(context.Background(), sc)
	require.NoError(t, err)
	assert.Contains(t, got, `"pay us back later"`)
	assert.Contains(t, got, "travel debt")
	assert.True(t, strings.HasSuffix(got, "Remember: Never accept a job that starts with a debt."))

	empty := DemoExplanation(&catalog.Scenario{})
	var text string
	require.NoError(t, json.Unmarshal(empty.Content, &text))
	assert.NotEmpty(t, text)
}

func TestDemo(t *testing.T) {
	d := NewDemo(DefaultConfig(), nil)

	got, err := d.Check(context.Background(), CheckInput{Check: promptkit.CheckJobAd, Content: jobAd})
	require.NoError(t, err)
	assert.Equal(t, risk.High, got.Score.Band)

	// a second call gets its own canned answer
	got, err = d.Check(context.Background(), CheckInput{Content: "Library volunteers wanted on Saturday mornings."})
	require.NoError(t, err)
	assert.Equal(t, risk.Low, got.Score.Band)

	text, err := d.Explain(context.Background(), &catalog.Scenario{Takeaway: "Ask before you go."})
	require.NoError(t, err)
	assert.Equal(t, "Remember: Ask before you go.", text)

	_, err = d.Explain(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, 3, d.mock.CallCount())

	_, err = d.Check(context.Background(), CheckInput{Content: "  "})
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Equal(t, 3, d.mock.CallCount())
}

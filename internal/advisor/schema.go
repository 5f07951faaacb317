package advisor

import "github.com/aiaware/aiaware/internal/llm"

// AssessmentSchema defines the JSON schema for safety check responses.
var AssessmentSchema = &llm.Schema{
	Name:        "risk-assessment",
	Description: "A cautious risk assessment of pasted material for signs of trafficking or exploitation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"risk": map[string]any{
				"type":        "string",
				"enum":        []any{"low", "medium", "high"},
				"description": "Overall risk label",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Risk score: 0-30 low, 31-70 medium, 71-100 high",
			},
			"reasons": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 3 short reasons in simple words",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to 2 gentle next-step ideas",
			},
			"quotes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exact phrases copied from the material that raise concern. Empty if none.",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "One sentence summary",
			},
		},
		"required":             []any{"risk", "score", "reasons", "next_steps", "quotes", "summary"},
		"additionalProperties": false,
	},
}

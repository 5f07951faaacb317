package advisor

// Config controls the behavior of the Advisor.
type Config struct {
	// Validators run in order on every assessment; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxContentRunes caps the pasted material sent to the model. Longer
	// content is cut and marked as truncated.
	MaxContentRunes int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&QuoteValidator{},
		},
		MaxTokens:       700,
		Temperature:     0.2,
		MaxContentRunes: 6000,
	}
}

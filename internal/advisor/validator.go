package advisor

import (
	"fmt"
	"strings"
)

// Validator checks an assessment before it is shown.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if the assessment passes.
	Validate(a *Assessment, input CheckInput) *ValidationError
}

// ValidationError describes why an assessment failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator requires at least one reason and drops blank entries.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(a *Assessment, _ CheckInput) *ValidationError {
	a.Reasons = compact(a.Reasons)
	a.NextSteps = compact(a.NextSteps)
	a.Quotes = compact(a.Quotes)
	if len(a.Reasons) == 0 {
		return &ValidationError{Validator: v.Name(), Message: "assessment has no reasons"}
	}
	return nil
}

// QuoteValidator keeps only quotes that actually occur in the pasted
// material, ignoring case and surrounding quote marks.
type QuoteValidator struct{}

func (v *QuoteValidator) Name() string { return "quotes" }

func (v *QuoteValidator) Validate(a *Assessment, input CheckInput) *ValidationError {
	content := strings.ToLower(input.Content)
	kept := a.Quotes[:0]
	for _, q := range a.Quotes {
		needle := strings.ToLower(strings.Trim(q, `"'“”‘’ `))
		if needle != "" && strings.Contains(content, needle) {
			kept = append(kept, q)
		}
	}
	a.Quotes = kept
	return nil
}

func compact(items []string) []string {
	out := items[:0]
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

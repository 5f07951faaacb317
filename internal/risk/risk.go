// Package risk maps a 0-100 risk score onto the three bands shown by the
// risk gauge.
package risk

import (
	"fmt"
	"strings"
)

// Band is a coarse risk level.
type Band int

const (
	Low Band = iota
	Medium
	High
)

// Band upper bounds, inclusive.
const (
	LowMax    = 30
	MediumMax = 70
)

// Clamp limits score to [0, 100].
func Clamp(score int) int {
	return max(0, min(100, score))
}

// BandFor returns the band of a score after clamping.
func BandFor(score int) Band {
	s := Clamp(score)
	switch {
	case s <= LowMax:
		return Low
	case s <= MediumMax:
		return Medium
	default:
		return High
	}
}

// String returns the lowercase label used in model output.
func (b Band) String() string {
	switch b {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// Label returns the display label, e.g. "Medium Risk".
func (b Band) Label() string {
	switch b {
	case Low:
		return "Low Risk"
	case Medium:
		return "Medium Risk"
	default:
		return "High Risk"
	}
}

// Symbol returns the marker shown next to the label.
func (b Band) Symbol() string {
	if b == Low {
		return "✅"
	}
	return "⚠️"
}

// Color returns the band's hex color.
func (b Band) Color() string {
	switch b {
	case Low:
		return "#4CAF50"
	case Medium:
		return "#FFC107"
	default:
		return "#F44336"
	}
}

// ParseBand parses "low", "medium" or "high", case-insensitively.
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return Low, fmt.Errorf("unknown risk level %q", s)
}

// Score holds a clamped score and its band.
type Score struct {
	Value int
	Band  Band
}

// NewScore clamps value and derives its band.
func NewScore(value int) Score {
	v := Clamp(value)
	return Score{Value: v, Band: BandFor(v)}
}

// String renders "42/100 Medium Risk".
func (s Score) String() string {
	return fmt.Sprintf("%d/100 %s", s.Value, s.Band.Label())
}

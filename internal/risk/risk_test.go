package risk

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {42, 42}, {100, 100}, {250, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{-10, Low},
		{0, Low},
		{30, Low},
		{31, Medium},
		{70, Medium},
		{71, High},
		{100, High},
		{500, High},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestBandLabels(t *testing.T) {
	if Low.Label() != "Low Risk" || Medium.Label() != "Medium Risk" || High.Label() != "High Risk" {
		t.Error("unexpected labels")
	}
	if Low.Symbol() != "✅" || High.Symbol() != "⚠️" {
		t.Error("unexpected symbols")
	}
	if Medium.Color() != "#FFC107" {
		t.Errorf("Medium.Color() = %s", Medium.Color())
	}
}

func TestParseBand(t *testing.T) {
	for _, b := range []Band{Low, Medium, High} {
		got, err := ParseBand(" " + b.String() + " ")
		if err != nil || got != b {
			t.Errorf("ParseBand(%q) = %v, %v", b.String(), got, err)
		}
	}
	if got, err := ParseBand("HIGH"); err != nil || got != High {
		t.Errorf("ParseBand(HIGH) = %v, %v", got, err)
	}
	if _, err := ParseBand("extreme"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewScore(t *testing.T) {
	s := NewScore(140)
	if s.Value != 100 || s.Band != High {
		t.Fatalf("NewScore(140) = %+v", s)
	}
	if got := NewScore(42).String(); got != "42/100 Medium Risk" {
		t.Errorf("String() = %q", got)
	}
}

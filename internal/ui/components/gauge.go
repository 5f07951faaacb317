package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aiaware/aiaware/internal/risk"
	"github.com/aiaware/aiaware/internal/ui/theme"
)

// Gauge renders a risk score as a three-band meter with a needle.
type Gauge struct {
	Score risk.Score
	Width int
}

// NewGauge creates a gauge for value, clamped to 0-100.
func NewGauge(value, width int) Gauge {
	return Gauge{Score: risk.NewScore(value), Width: width}
}

// Needle returns the needle's cell offset within a meter of the given width.
func (g Gauge) Needle(meterWidth int) int {
	if meterWidth <= 1 {
		return 0
	}
	return g.Score.Value * (meterWidth - 1) / 100
}

// View renders the gauge: the needle line, the colored bands and the
// caption such as "✅ 12/100 Low Risk".
func (g Gauge) View() string {
	width := g.Width
	if width < 10 {
		width = 10
	}

	var meter strings.Builder
	for i := range width {
		value := i * 100 / (width - 1)
		band := risk.BandFor(value)
		meter.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(band.Color())).
			Render(" "))
	}

	needle := strings.Repeat(" ", g.Needle(width)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("▼")

	caption := theme.RiskStyle(g.Score.Band).
		Render(fmt.Sprintf("%s %s", g.Score.Band.Symbol(), g.Score))

	return needle + "\n" + meter.String() + "\n" + caption
}

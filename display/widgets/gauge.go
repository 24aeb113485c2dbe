package widgets

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/statusdeck/display/countdown"
)

// GaugeConfig controls the appearance and behavior of a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the total character width of the gauge bar.
	Width int
	// Percent is the value from 0 to 100.
	Percent float64
	// Label is optional text shown to the left of the bar.
	Label string
	// ShowPercent controls whether "XX%" is shown to the right.
	ShowPercent bool
	// ThresholdWarning is the % at which color changes to yellow (default: 70).
	ThresholdWarning float64
	// ThresholdDanger is the % at which color changes to red (default: 90).
	ThresholdDanger float64
	// FilledChar is the character for filled portion (default: "█").
	FilledChar string
	// EmptyChar is the character for empty portion (default: "░").
	EmptyChar string
}

// DefaultGaugeConfig returns a GaugeConfig with sensible defaults.
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:            20,
		ShowPercent:      true,
		ThresholdWarning: 70,
		ThresholdDanger:  90,
		FilledChar:       "█",
		EmptyChar:        "░",
	}
}

// gaugeColor maps a percentage to an urgency tier color so gauges and
// countdown text share the same three color bands.
func gaugeColor(percent, warning, danger float64) lipgloss.Color {
	switch {
	case percent >= danger:
		return countdown.TierHigh.Color()
	case percent >= warning:
		return countdown.TierMedium.Color()
	default:
		return countdown.TierLow.Color()
	}
}

// RenderGauge renders a horizontal bar gauge with optional label and percentage.
// Format: [Label] [████████░░░░] [XX%]
func RenderGauge(cfg GaugeConfig) string {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	filledChar := cfg.FilledChar
	if filledChar == "" {
		filledChar = "█"
	}
	emptyChar := cfg.EmptyChar
	if emptyChar == "" {
		emptyChar = "░"
	}

	width := cfg.Width
	if width <= 0 {
		width = 20
	}

	filledCount := int(math.Round(percent / 100.0 * float64(width)))
	emptyCount := width - filledCount

	color := gaugeColor(percent, cfg.ThresholdWarning, cfg.ThresholdDanger)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(filledChar, filledCount)) +
		strings.Repeat(emptyChar, emptyCount)

	var sb strings.Builder
	if cfg.Label != "" {
		sb.WriteString(cfg.Label)
		sb.WriteString(" ")
	}
	sb.WriteString(bar)
	if cfg.ShowPercent {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%3.0f%%", percent))
	}
	return sb.String()
}

// RenderCountdownGauge renders the elapsed portion of a countdown window as a
// bar gauge. The bar fills as the deadline approaches, so the color bands line
// up with the countdown urgency tiers.
func RenderCountdownGauge(remaining, total time.Duration, width int) string {
	if total <= 0 {
		return RenderGauge(GaugeConfig{Width: width, Percent: 100, ThresholdWarning: 70, ThresholdDanger: 90})
	}
	elapsed := total - remaining
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}
	percent := float64(elapsed) / float64(total) * 100
	return RenderGauge(GaugeConfig{
		Width:            width,
		Percent:          percent,
		ShowPercent:      false,
		ThresholdWarning: 70,
		ThresholdDanger:  90,
	})
}

// Package widgets provides small reusable rendering components for the
// statusdeck dashboard.
package widgets

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/statusdeck/display/countdown"
)

// tierIcons maps each urgency tier to its indicator glyph.
var tierIcons = map[countdown.Tier]string{
	countdown.TierLow:    "●", // ● solid dot
	countdown.TierMedium: "●",
	countdown.TierHigh:   "●",
}

// unknownIcon is shown for out-of-range tiers.
const unknownIcon = "○" // ○ outline

// StatusConfig holds the configuration for rendering an urgency indicator.
type StatusConfig struct {
	// Tier determines the color.
	Tier countdown.Tier
	// Text is the label shown next to the indicator.
	Text string
	// ShowIcon controls whether the colored dot is shown.
	ShowIcon bool
}

// RenderStatus renders an urgency indicator with an optional colored dot
// and text. The three color bands come from the countdown tier mapping so
// the dot and any countdown text shown next to it always agree.
func RenderStatus(cfg StatusConfig) string {
	style := lipgloss.NewStyle().Foreground(cfg.Tier.Color())

	if cfg.ShowIcon {
		icon, ok := tierIcons[cfg.Tier]
		if !ok {
			icon = unknownIcon
		}
		coloredIcon := style.Render(icon)
		if cfg.Text == "" {
			return coloredIcon
		}
		return coloredIcon + " " + cfg.Text
	}

	return style.Render(cfg.Text)
}

// RenderCountdownStatus renders a colored dot plus the formatted countdown
// for the given remaining time.
func RenderCountdownStatus(remaining time.Duration) string {
	return RenderStatus(StatusConfig{
		Tier:     countdown.TierFor(remaining),
		Text:     countdown.Format(remaining),
		ShowIcon: true,
	})
}

// Package countdown classifies remaining time into the three urgency tiers
// used for color emphasis and formats the matching countdown text. Both are
// derived from the same ceiled seconds value, so the displayed number and
// the tier can never disagree.
package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Tier is a coarse urgency classification of remaining time.
type Tier int

const (
	// TierLow means more than 5 seconds remain.
	TierLow Tier = iota
	// TierMedium means 3 to 5 seconds remain.
	TierMedium
	// TierHigh means 2 seconds or less remain.
	TierHigh
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// tierColors maps each tier to its emphasis color (green/yellow/red bands,
// matching the widget status palette).
var tierColors = map[Tier]lipgloss.Color{
	TierLow:    lipgloss.Color("#22C55E"),
	TierMedium: lipgloss.Color("#EAB308"),
	TierHigh:   lipgloss.Color("#EF4444"),
}

// Color returns the lipgloss color for the tier.
func (t Tier) Color() lipgloss.Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return tierColors[TierHigh]
}

// Seconds returns the display integer for a remaining duration: the ceiling
// of the value in whole seconds. Negative and zero durations clamp to 0
// rather than leaking negative arithmetic into the display.
func Seconds(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	s := int(remaining / time.Second)
	if remaining%time.Second != 0 {
		s++
	}
	return s
}

// TierFor classifies remaining time. The boundaries operate on the ceiled
// seconds value from Seconds, not the raw duration: >5s low, 3-5s medium,
// <=2s high.
func TierFor(remaining time.Duration) Tier {
	s := Seconds(remaining)
	switch {
	case s > 5:
		return TierLow
	case s >= 3:
		return TierMedium
	default:
		return TierHigh
	}
}

// Format renders the countdown as "<seconds>s" using the same ceiling rule
// as TierFor.
func Format(remaining time.Duration) string {
	return fmt.Sprintf("%ds", Seconds(remaining))
}

// Render formats the countdown and colors it by urgency tier.
func Render(remaining time.Duration) string {
	style := lipgloss.NewStyle().Foreground(TierFor(remaining).Color())
	return style.Render(Format(remaining))
}

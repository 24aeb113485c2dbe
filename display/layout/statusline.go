package layout

import (
	"strings"

	"gitlab.com/tinyland/lab/statusdeck/display/text"
)

// RenderedSegment is one (text, side, order) tuple emitted to the
// rendering sink. Order is the render position within the full line, left
// group first.
type RenderedSegment struct {
	// Text is the segment's formatted visual text.
	Text string
	// Side is the group the segment was placed in.
	Side Side
	// Order is the zero-based render position.
	Order int
}

// LineOptions controls status-line composition.
type LineOptions struct {
	// Width is the total column budget for the line.
	Width int
	// Breakpoint is the measured terminal tier.
	Breakpoint Breakpoint
	// Density is the user-requested display density.
	Density Density
	// Mode is the label abbreviation policy.
	Mode AbbrevMode
	// Separator goes between segments within a group. Defaults to two spaces.
	Separator string
	// MaxValueWidth truncates each segment value. Zero means no per-value cap.
	MaxValueWidth int
}

// RenderSegments formats each visible segment into its final text and
// returns the ordered (text, side, order) tuples. Segment text is
// "icon label value" with missing parts omitted; values are truncated to
// MaxValueWidth when set.
func RenderSegments(segments []Segment, opts LineOptions) []RenderedSegment {
	visible := VisibleSegments(segments, opts.Breakpoint, opts.Density)
	out := make([]RenderedSegment, 0, len(visible))

	for i, s := range visible {
		out = append(out, RenderedSegment{
			Text:  formatSegment(s, opts),
			Side:  s.Side,
			Order: i,
		})
	}
	return out
}

// formatSegment builds one segment's visual text.
func formatSegment(s Segment, opts LineOptions) string {
	label := ResolveLabel(s, opts.Mode, opts.Breakpoint, opts.Density)

	value := s.Value
	if opts.MaxValueWidth > 0 {
		value = text.Truncate(value, opts.MaxValueWidth, text.DefaultEllipsis).Text
	}

	parts := make([]string, 0, 3)
	if s.Icon != "" {
		parts = append(parts, s.Icon)
	}
	if label != "" {
		parts = append(parts, label)
	}
	if value != "" {
		parts = append(parts, value)
	}
	return strings.Join(parts, " ")
}

// ComposeLine renders the visible segments as a single status line no wider
// than opts.Width: the left group, a padding gap, then the right group.
// When both groups cannot fit, the left group is truncated first; the right
// group is only truncated if it alone exceeds the budget.
func ComposeLine(segments []Segment, opts LineOptions) string {
	if opts.Width < 1 {
		opts.Width = 1
	}
	sep := opts.Separator
	if sep == "" {
		sep = "  "
	}

	rendered := RenderSegments(segments, opts)

	var left, right []string
	for _, r := range rendered {
		if r.Side == SideLeft {
			left = append(left, r.Text)
		} else {
			right = append(right, r.Text)
		}
	}

	leftStr := strings.Join(left, sep)
	rightStr := strings.Join(right, sep)

	if text.Width(rightStr) > opts.Width {
		rightStr = text.Truncate(rightStr, opts.Width, text.DefaultEllipsis).Text
	}

	// Leave at least one column between the groups when both are present.
	leftBudget := opts.Width
	if rightStr != "" {
		leftBudget = opts.Width - text.Width(rightStr) - 1
	}
	if text.Width(leftStr) > leftBudget {
		if leftBudget < 0 {
			leftBudget = 0
		}
		leftStr = text.Truncate(leftStr, leftBudget, text.DefaultEllipsis).Text
	}

	gap := opts.Width - text.Width(leftStr) - text.Width(rightStr)
	if gap < 0 {
		gap = 0
	}
	if rightStr == "" {
		return leftStr
	}
	return leftStr + strings.Repeat(" ", gap) + rightStr
}

// Package layout implements the responsive layout engine for statusdeck.
//
// Every function in this package is a pure function of its explicit inputs:
// terminal dimensions (or the Breakpoint derived from them) are always
// passed as arguments, never read from shared state, so each render pass is
// an independent computation and rapid resize events cannot corrupt
// anything between passes.
package layout

// Breakpoint is an ordered terminal-width class. Wider terminals map to
// higher breakpoints and show strictly more information.
type Breakpoint int

const (
	// BreakpointNarrow is for terminals below the narrow threshold.
	BreakpointNarrow Breakpoint = iota
	// BreakpointCompact is for terminals between the narrow and compact thresholds.
	BreakpointCompact
	// BreakpointNormal is for terminals between the compact and normal thresholds.
	BreakpointNormal
	// BreakpointWide is for terminals above the normal threshold.
	BreakpointWide
)

// String returns the human-readable name of the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointNarrow:
		return "narrow"
	case BreakpointCompact:
		return "compact"
	case BreakpointNormal:
		return "normal"
	case BreakpointWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Thresholds holds the width cut points between breakpoints.
// They must satisfy NarrowMax < CompactMax < NormalMax.
type Thresholds struct {
	// NarrowMax is the first width that is no longer narrow.
	NarrowMax int
	// CompactMax is the first width that is no longer compact.
	CompactMax int
	// NormalMax is the last width that is still normal.
	NormalMax int
}

// DefaultThresholds returns the standard breakpoint cut points:
// narrow < 60, compact < 100, normal <= 160, wide > 160.
func DefaultThresholds() Thresholds {
	return Thresholds{
		NarrowMax:  60,
		CompactMax: 100,
		NormalMax:  160,
	}
}

// Valid reports whether the thresholds are strictly ordered.
func (t Thresholds) Valid() bool {
	return t.NarrowMax > 0 && t.NarrowMax < t.CompactMax && t.CompactMax < t.NormalMax
}

// Classify maps a terminal width to its breakpoint. Widths below 1
// (including the zero value a failed size query can produce) are clamped to
// 1 before classification, so the function is total.
func Classify(width int, t Thresholds) Breakpoint {
	if width < 1 {
		width = 1
	}
	switch {
	case width < t.NarrowMax:
		return BreakpointNarrow
	case width < t.CompactMax:
		return BreakpointCompact
	case width <= t.NormalMax:
		return BreakpointNormal
	default:
		return BreakpointWide
	}
}

package layout

// Priority is the ordinal importance of a segment. Lower values are more
// important and survive to narrower breakpoints.
type Priority int

const (
	// PriorityCritical segments are visible at every breakpoint.
	PriorityCritical Priority = iota
	// PriorityHigh segments are visible at every breakpoint.
	PriorityHigh
	// PriorityMedium segments require at least a compact terminal.
	PriorityMedium
	// PriorityLow segments require a wide terminal.
	PriorityLow
)

// PriorityFromString parses a priority name. The second return value is
// false for unrecognized names; callers feed the resulting segment through
// VisibleSegments, which drops it (unknown priorities fail closed).
func PriorityFromString(s string) (Priority, bool) {
	switch s {
	case "critical":
		return PriorityCritical, true
	case "high":
		return PriorityHigh, true
	case "medium":
		return PriorityMedium, true
	case "low":
		return PriorityLow, true
	default:
		return Priority(-1), false
	}
}

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Side is the status-line group a segment belongs to.
type Side int

const (
	// SideLeft segments render before all right segments.
	SideLeft Side = iota
	// SideRight segments render after all left segments.
	SideRight
)

// SideFromString parses a side name, defaulting to left.
func SideFromString(s string) Side {
	if s == "right" {
		return SideRight
	}
	return SideLeft
}

// Density is an explicit user request for display density. It overrides the
// measured breakpoint: a user asking for compact output gets compact output
// in a 300-column terminal. This is a separate type from Breakpoint: one
// describes what the user wants, the other what the terminal measures.
type Density int

const (
	// DensityAuto defers to the measured breakpoint.
	DensityAuto Density = iota
	// DensityCompact forces the narrow-tier visibility set.
	DensityCompact
	// DensityVerbose forces the wide-tier visibility set plus verbose-only segments.
	DensityVerbose
)

// DensityFromString parses a density name, defaulting to auto.
func DensityFromString(s string) Density {
	switch s {
	case "compact":
		return DensityCompact
	case "verbose":
		return DensityVerbose
	default:
		return DensityAuto
	}
}

// String returns the density name.
func (d Density) String() string {
	switch d {
	case DensityCompact:
		return "compact"
	case DensityVerbose:
		return "verbose"
	default:
		return "auto"
	}
}

// Segment is one discrete piece of status information. Segments are
// constructed fresh each render from caller data and never retained; the
// engine treats the input slice as immutable.
type Segment struct {
	// ID identifies the logical segment across renders.
	ID string
	// Priority controls at which breakpoints the segment is visible.
	Priority Priority
	// Side places the segment in the left or right status-line group.
	Side Side
	// Icon is an optional leading glyph.
	Icon string
	// Label is the full label text.
	Label string
	// Abbrev is the short label used at narrow widths. An empty Abbrev with
	// AbbrevSet=true means "value only, no label", distinct from an unset
	// abbreviation, which falls back to Label.
	Abbrev string
	// AbbrevSet reports whether Abbrev was deliberately provided.
	AbbrevSet bool
	// Value is the segment's data text.
	Value string
	// VerboseOnly segments appear only under DensityVerbose.
	VerboseOnly bool
}

// maxVisiblePriority returns the lowest-importance priority still visible
// at the given breakpoint. The sets are monotonic: every breakpoint shows a
// superset of the next narrower one.
func maxVisiblePriority(b Breakpoint) Priority {
	switch b {
	case BreakpointNarrow:
		return PriorityHigh
	case BreakpointCompact, BreakpointNormal:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// VisibleSegments filters segments for a breakpoint and density override.
// DensityCompact forces the narrow visibility set and DensityVerbose forces
// the wide set regardless of the measured breakpoint; verbose additionally
// admits VerboseOnly segments, which no other mode shows. Output order is
// stable: left segments (in input order) followed by right segments (in
// input order). Segments with an out-of-range priority are dropped.
func VisibleSegments(segments []Segment, b Breakpoint, density Density) []Segment {
	effective := b
	switch density {
	case DensityCompact:
		effective = BreakpointNarrow
	case DensityVerbose:
		effective = BreakpointWide
	}
	maxPriority := maxVisiblePriority(effective)

	visible := func(s Segment) bool {
		if s.Priority < PriorityCritical || s.Priority > PriorityLow {
			return false
		}
		if s.VerboseOnly && density != DensityVerbose {
			return false
		}
		return s.Priority <= maxPriority
	}

	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Side == SideLeft && visible(s) {
			out = append(out, s)
		}
	}
	for _, s := range segments {
		if s.Side == SideRight && visible(s) {
			out = append(out, s)
		}
	}
	return out
}

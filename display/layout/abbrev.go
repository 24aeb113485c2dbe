package layout

// AbbrevMode is the policy for choosing between a segment's full and
// abbreviated labels.
type AbbrevMode int

const (
	// AbbrevAuto abbreviates at the narrow breakpoint and uses full labels
	// elsewhere, unless a density override forces one or the other.
	AbbrevAuto AbbrevMode = iota
	// AbbrevFull always uses the full label.
	AbbrevFull
	// AbbrevAbbreviated always uses the abbreviated label when one is set.
	AbbrevAbbreviated
)

// AbbrevModeFromString parses an abbreviation mode name, defaulting to auto.
func AbbrevModeFromString(s string) AbbrevMode {
	switch s {
	case "full":
		return AbbrevFull
	case "abbreviated":
		return AbbrevAbbreviated
	default:
		return AbbrevAuto
	}
}

// String returns the mode name.
func (m AbbrevMode) String() string {
	switch m {
	case AbbrevFull:
		return "full"
	case AbbrevAbbreviated:
		return "abbreviated"
	default:
		return "auto"
	}
}

// ResolveLabel picks the label text for a segment. The decision table:
//
//	full         -> Label
//	abbreviated  -> Abbrev if set (an empty set Abbrev means "no label"),
//	                otherwise Label
//	auto         -> density verbose forces full, density compact forces
//	                abbreviated; otherwise abbreviated at narrow, full
//	                elsewhere
//
// A missing abbreviation never renders an empty label by accident: only a
// deliberately set empty Abbrev does.
func ResolveLabel(s Segment, mode AbbrevMode, b Breakpoint, density Density) string {
	effective := mode
	if mode == AbbrevAuto {
		switch {
		case density == DensityVerbose:
			effective = AbbrevFull
		case density == DensityCompact:
			effective = AbbrevAbbreviated
		case b == BreakpointNarrow:
			effective = AbbrevAbbreviated
		default:
			effective = AbbrevFull
		}
	}

	if effective == AbbrevAbbreviated && s.AbbrevSet {
		return s.Abbrev
	}
	return s.Label
}

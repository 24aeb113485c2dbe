// Package diffview selects and renders macro layouts for wide structured
// content such as diffs and code blocks. The selector decides between
// unified, split, and inline arrangements from the available width, and the
// width helpers compute line-number gutters and per-pane content budgets so
// that no rendered row can exceed the terminal width.
package diffview

import "fmt"

// Mode is the macro arrangement for diff/code content.
type Mode int

const (
	// ModeUnified interleaves old and new lines in a single column.
	ModeUnified Mode = iota
	// ModeSplit shows old and new side by side. Requires a wide terminal.
	ModeSplit
	// ModeInline shows changes inside the text flow without gutters.
	// Never chosen automatically; opt-in only.
	ModeInline
	// ModeAuto picks unified or split from the available width. It is a
	// request value only and never appears in a Resolution.
	ModeAuto
)

// ModeFromString parses a mode name. Unrecognized names report ok=false.
func ModeFromString(s string) (Mode, bool) {
	switch s {
	case "unified":
		return ModeUnified, true
	case "split":
		return ModeSplit, true
	case "inline":
		return ModeInline, true
	case "auto", "":
		return ModeAuto, true
	default:
		return ModeAuto, false
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUnified:
		return "unified"
	case ModeSplit:
		return "split"
	case ModeInline:
		return "inline"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultSplitMinWidth is the narrowest terminal that still gets a split
// view: below this, two panes plus gutters leave too few content columns.
const DefaultSplitMinWidth = 120

// Resolution is the outcome of SelectMode. Mode is always a concrete
// layout, never ModeAuto.
type Resolution struct {
	// Mode is the layout to render.
	Mode Mode
	// Fallback reports that the requested layout could not be honored.
	Fallback bool
	// Notice is a user-facing explanation when Fallback is set, empty
	// otherwise. Losing a requested layout must be observable, not silent.
	Notice string
}

// SelectMode resolves the requested mode against the available width. An
// explicit request always wins, with one exception: split below
// splitMinWidth falls back to unified with a notice. Auto picks split when
// the width allows and unified otherwise; auto never picks inline.
func SelectMode(requested Mode, width, splitMinWidth int) Resolution {
	if splitMinWidth <= 0 {
		splitMinWidth = DefaultSplitMinWidth
	}
	if width < 1 {
		width = 1
	}

	switch requested {
	case ModeSplit:
		if width < splitMinWidth {
			return Resolution{
				Mode:     ModeUnified,
				Fallback: true,
				Notice:   fmt.Sprintf("split view needs %d columns (have %d); showing unified", splitMinWidth, width),
			}
		}
		return Resolution{Mode: ModeSplit}
	case ModeAuto:
		if width >= splitMinWidth {
			return Resolution{Mode: ModeSplit}
		}
		return Resolution{Mode: ModeUnified}
	default:
		return Resolution{Mode: requested}
	}
}

// Line-number gutter bounds.
const (
	gutterDefault     = 3
	gutterCompact     = 2
	gutterMax         = 6
	gutterNarrowWidth = 60
)

// LineNumberWidth returns the gutter width for line numbers. It grows with
// the digit count of the largest line number, shrinks to a compact minimum
// in narrow terminals, and is capped so huge files cannot dominate the
// layout. An empty input set (maxLineNumber <= 0) gets the default of 3.
func LineNumberWidth(maxLineNumber, width int) int {
	if maxLineNumber <= 0 {
		return gutterDefault
	}

	digits := 1
	for n := maxLineNumber; n >= 10; n /= 10 {
		digits++
	}

	floor := gutterDefault
	if width < gutterNarrowWidth {
		floor = gutterCompact
	}
	if digits < floor {
		digits = floor
	}
	if digits > gutterMax {
		digits = gutterMax
	}
	return digits
}

// ContentWidth returns the text budget for each pane given the total width,
// a per-pane line-number gutter, the pane count (1 or 2), and the width of
// the separator drawn between panes. The result satisfies
// panes*content + panes*gutter + separators <= totalWidth whenever the
// terminal has room for at least one content column per pane; a floor of 1
// guards pathological inputs from going negative. SelectMode's
// splitMinWidth keeps two-pane layouts away from widths where the floor
// would matter.
func ContentWidth(totalWidth, lineNumberWidth, panes, separatorWidth int) int {
	if panes < 1 {
		panes = 1
	}
	if panes > 2 {
		panes = 2
	}

	separators := (panes - 1) * separatorWidth
	available := totalWidth - separators - panes*lineNumberWidth
	content := available / panes
	if content < 1 {
		content = 1
	}
	return content
}

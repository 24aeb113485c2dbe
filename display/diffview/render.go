package diffview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"gitlab.com/tinyland/lab/statusdeck/display/text"
)

// RowKind classifies a diff row.
type RowKind int

const (
	// RowContext is an unchanged line present in both versions.
	RowContext RowKind = iota
	// RowAdded is a line only in the new version.
	RowAdded
	// RowRemoved is a line only in the old version.
	RowRemoved
)

// Row is one line of a computed diff. OldLine/NewLine are 1-based line
// numbers in their respective versions; 0 means the line does not exist on
// that side.
type Row struct {
	Kind    RowKind
	OldLine int
	NewLine int
	Text    string
}

// ComputeRows produces line-level diff rows between two texts.
func ComputeRows(oldText, newText string) []Row {
	dmp := diffmatchpatch.New()
	a, b, lineTexts := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineTexts)

	var rows []Row
	oldLine, newLine := 0, 0

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
				rows = append(rows, Row{Kind: RowContext, OldLine: oldLine, NewLine: newLine, Text: line})
			case diffmatchpatch.DiffDelete:
				oldLine++
				rows = append(rows, Row{Kind: RowRemoved, OldLine: oldLine, Text: line})
			case diffmatchpatch.DiffInsert:
				newLine++
				rows = append(rows, Row{Kind: RowAdded, NewLine: newLine, Text: line})
			}
		}
	}
	return rows
}

// splitLines splits diff chunk text into lines, dropping the empty trailing
// element a terminal newline produces.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MaxLineNumber returns the largest line number on either side of the rows.
func MaxLineNumber(rows []Row) int {
	maxLine := 0
	for _, r := range rows {
		if r.OldLine > maxLine {
			maxLine = r.OldLine
		}
		if r.NewLine > maxLine {
			maxLine = r.NewLine
		}
	}
	return maxLine
}

// Diff row styling.
var (
	styleAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	styleRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	styleGutter  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

const splitSeparator = " │ "

// Render renders diff rows in the given resolved mode, producing lines that
// never exceed totalWidth columns. ModeAuto is treated as unified; resolve
// the mode with SelectMode first.
func Render(rows []Row, mode Mode, totalWidth int, color bool) []string {
	if totalWidth < 1 {
		totalWidth = 1
	}
	switch mode {
	case ModeSplit:
		return renderSplit(rows, totalWidth, color)
	case ModeInline:
		return renderInline(rows, totalWidth, color)
	default:
		return renderUnified(rows, totalWidth, color)
	}
}

// renderUnified renders "NNN ± text" rows in a single column.
func renderUnified(rows []Row, totalWidth int, color bool) []string {
	gutter := LineNumberWidth(MaxLineNumber(rows), totalWidth)
	// Overhead per row: gutter, a space, a two-column marker.
	contentBudget := ContentWidth(totalWidth, gutter+3, 1, 0)

	out := make([]string, 0, len(rows))
	for _, r := range rows {
		marker := "  "
		lineNo := r.NewLine
		switch r.Kind {
		case RowAdded:
			marker = "+ "
		case RowRemoved:
			marker = "- "
			lineNo = r.OldLine
		}

		content := text.Truncate(r.Text, contentBudget, text.DefaultEllipsis).Text
		num := fmt.Sprintf("%*d", gutter, lineNo)
		if color {
			num = styleGutter.Render(num)
			content = styleRow(r.Kind, marker+content)
			out = append(out, num+" "+content)
		} else {
			out = append(out, num+" "+marker+content)
		}
	}
	return out
}

// renderSplit renders old and new side by side, pairing removed lines with
// the added lines that replaced them.
func renderSplit(rows []Row, totalWidth int, color bool) []string {
	gutter := LineNumberWidth(MaxLineNumber(rows), totalWidth)
	paneBudget := ContentWidth(totalWidth, gutter+1, 2, text.Width(splitSeparator))

	type cell struct {
		lineNo int
		text   string
		kind   RowKind
	}
	var lefts, rights []cell

	var pendingRemoved []cell
	flushPending := func() {
		for _, c := range pendingRemoved {
			lefts = append(lefts, c)
			rights = append(rights, cell{})
		}
		pendingRemoved = nil
	}

	for _, r := range rows {
		switch r.Kind {
		case RowContext:
			flushPending()
			lefts = append(lefts, cell{r.OldLine, r.Text, RowContext})
			rights = append(rights, cell{r.NewLine, r.Text, RowContext})
		case RowRemoved:
			pendingRemoved = append(pendingRemoved, cell{r.OldLine, r.Text, RowRemoved})
		case RowAdded:
			if len(pendingRemoved) > 0 {
				lefts = append(lefts, pendingRemoved[0])
				pendingRemoved = pendingRemoved[1:]
			} else {
				lefts = append(lefts, cell{})
			}
			rights = append(rights, cell{r.NewLine, r.Text, RowAdded})
		}
	}
	flushPending()

	renderCell := func(c cell) string {
		num := strings.Repeat(" ", gutter)
		if c.lineNo > 0 {
			num = fmt.Sprintf("%*d", gutter, c.lineNo)
		}
		content := text.Truncate(c.text, paneBudget, text.DefaultEllipsis).Text
		padded := content + strings.Repeat(" ", paneBudget-text.Width(content))
		if color {
			return styleGutter.Render(num) + " " + styleRow(c.kind, padded)
		}
		return num + " " + padded
	}

	out := make([]string, 0, len(lefts))
	for i := range lefts {
		out = append(out, renderCell(lefts[i])+splitSeparator+renderCell(rights[i]))
	}
	return out
}

// renderInline renders changes inside the text flow: no gutters, removed
// and added lines prefixed and wrapped to the full width.
func renderInline(rows []Row, totalWidth int, color bool) []string {
	var out []string
	for _, r := range rows {
		prefix := ""
		switch r.Kind {
		case RowAdded:
			prefix = "+"
		case RowRemoved:
			prefix = "-"
		}
		for _, line := range text.Wrap(prefix+r.Text, totalWidth) {
			if color {
				line = styleRow(r.Kind, line)
			}
			out = append(out, line)
		}
	}
	return out
}

// styleRow colors a rendered row by kind.
func styleRow(kind RowKind, s string) string {
	switch kind {
	case RowAdded:
		return styleAdded.Render(s)
	case RowRemoved:
		return styleRemoved.Render(s)
	default:
		return s
	}
}

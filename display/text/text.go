// Package text provides Unicode-aware truncation and wrapping for terminal
// content. All widths are measured in terminal columns (display cells), not
// runes or bytes, so CJK and other wide glyphs count correctly against a
// width budget.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// DefaultEllipsis is the marker appended to truncated strings.
const DefaultEllipsis = "..."

// Width returns the number of terminal columns s occupies.
// s is assumed to be plain text (no ANSI escape sequences).
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// StyledWidth returns the number of terminal columns s occupies, ignoring
// ANSI escape sequences. Use this for strings already styled with lipgloss.
func StyledWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// TruncationResult is the outcome of a Truncate call.
type TruncationResult struct {
	// Text is the (possibly truncated) output string.
	Text string
	// Truncated reports whether any content was cut.
	Truncated bool
	// OriginalLength is the rune count of the input, regardless of whether
	// truncation occurred. Callers use it for "(N chars)" indicators.
	OriginalLength int
}

// Truncate cuts s to the largest prefix whose display width plus the
// ellipsis width fits in maxWidth, then appends the ellipsis. Strings that
// already fit are returned unchanged. The output's display width is always
// <= maxWidth; maxWidth <= 0 yields an empty string. If the ellipsis itself
// does not fit, it is omitted rather than overflowing the budget.
func Truncate(s string, maxWidth int, ellipsis string) TruncationResult {
	runes := []rune(s)
	res := TruncationResult{Text: s, OriginalLength: len(runes)}

	if runewidth.StringWidth(s) <= maxWidth {
		return res
	}

	res.Truncated = true
	if maxWidth <= 0 {
		res.Text = ""
		return res
	}

	tail := ellipsis
	if runewidth.StringWidth(tail) > maxWidth {
		tail = ""
	}
	budget := maxWidth - runewidth.StringWidth(tail)

	var b strings.Builder
	used := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if used+rw > budget {
			break
		}
		b.WriteRune(r)
		used += rw
	}

	res.Text = b.String() + tail
	return res
}

// Wrap breaks s into lines of display width <= maxWidth. Explicit newlines
// in the input are preserved as forced breaks, and each resulting line is
// wrapped independently. Breaks happen at whitespace where possible; a
// single token wider than maxWidth is hard-split, preferring punctuation
// boundaries inside the token. maxWidth < 1 is clamped to 1.
func Wrap(s string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, maxWidth)...)
	}
	return lines
}

// wrapLine wraps a single newline-free line.
func wrapLine(s string, maxWidth int) []string {
	if runewidth.StringWidth(s) <= maxWidth {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		// Whitespace-only line wider than the budget.
		return []string{""}
	}

	var lines []string
	cur := ""
	curWidth := 0

	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
			curWidth = 0
		}
	}

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)

		if wordWidth > maxWidth {
			flush()
			parts := splitToken(word, maxWidth)
			for i, p := range parts {
				if i == len(parts)-1 {
					cur = p
					curWidth = runewidth.StringWidth(p)
				} else {
					lines = append(lines, p)
				}
			}
			continue
		}

		switch {
		case cur == "":
			cur = word
			curWidth = wordWidth
		case curWidth+1+wordWidth <= maxWidth:
			cur += " " + word
			curWidth += 1 + wordWidth
		default:
			flush()
			cur = word
			curWidth = wordWidth
		}
	}
	flush()

	return lines
}

// splitToken hard-splits a token wider than maxWidth into display-width
// sized chunks, cutting at the last punctuation boundary inside the budget
// when one exists.
func splitToken(tok string, maxWidth int) []string {
	var parts []string
	runes := []rune(tok)

	for len(runes) > 0 {
		used := 0
		cut := 0
		lastBreak := -1
		for i, r := range runes {
			rw := runewidth.RuneWidth(r)
			if used+rw > maxWidth {
				break
			}
			used += rw
			cut = i + 1
			if isBreakRune(r) {
				lastBreak = i + 1
			}
		}
		if cut == 0 {
			// Single rune wider than the budget; emit it anyway so the
			// loop always terminates.
			cut = 1
		}
		if lastBreak > 0 && cut < len(runes) {
			cut = lastBreak
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}

	return parts
}

// isBreakRune reports whether r is a natural intra-token break point.
func isBreakRune(r rune) bool {
	switch r {
	case '-', '/', '_', '.', ',', ';', ':':
		return true
	}
	return false
}

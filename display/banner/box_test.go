package banner

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/statusdeck/display/text"
)

func TestRenderBox_ExactWidth(t *testing.T) {
	out := RenderBox([]string{"one", "a much longer second line"}, 30, "info", RoundedBox, colorTitle)

	for i, line := range strings.Split(out, "\n") {
		if w := text.StyledWidth(line); w != 30 {
			t.Errorf("line %d width = %d, want 30: %q", i, w, line)
		}
	}
}

func TestRenderBox_NoTitle(t *testing.T) {
	out := RenderBox([]string{"x"}, 20, "", SharpBox, colorTitle)

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[0], "┐") {
		t.Errorf("top border = %q, want sharp corners", lines[0])
	}
	if got := strings.Count(lines[0], "─"); got != 18 {
		t.Errorf("top border has %d horizontal runes, want 18", got)
	}
}

func TestRenderBox_TruncatesLongLines(t *testing.T) {
	long := strings.Repeat("a", 100)
	out := RenderBox([]string{long}, 24, "", RoundedBox, colorTitle)

	for _, line := range strings.Split(out, "\n") {
		if w := text.StyledWidth(line); w != 24 {
			t.Errorf("line width = %d, want 24: %q", w, line)
		}
	}
}

func TestPadOrTruncate_StyledText(t *testing.T) {
	styled := "\x1b[31mred\x1b[0m"
	got := padOrTruncate(styled, 6)
	if w := text.StyledWidth(got); w != 6 {
		t.Errorf("padded width = %d, want 6: %q", w, got)
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("padding should preserve escape sequences: %q", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"plain fits", "abc", 5, "abc"},
		{"plain cut", "abcdef", 3, "abc"},
		{"zero width", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateToWidth(tt.in, tt.width); got != tt.want {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth_KeepsEscapes(t *testing.T) {
	in := "\x1b[32mgreen text\x1b[0m"
	got := truncateToWidth(in, 5)
	if w := text.StyledWidth(got); w != 5 {
		t.Errorf("visible width = %d, want 5: %q", w, got)
	}
	if !strings.HasPrefix(got, "\x1b[32m") {
		t.Errorf("leading escape should survive truncation: %q", got)
	}
}

package layout

import "testing"

// testSegments returns one segment of each priority, split across sides.
func testSegments() []Segment {
	return []Segment{
		{ID: "branch", Priority: PriorityCritical, Side: SideLeft, Label: "Branch", Value: "main"},
		{ID: "model", Priority: PriorityHigh, Side: SideLeft, Label: "Model", Value: "opus"},
		{ID: "tokens", Priority: PriorityMedium, Side: SideRight, Label: "Tokens", Value: "12.4k"},
		{ID: "cost", Priority: PriorityLow, Side: SideRight, Label: "Cost", Value: "$0.42"},
	}
}

func ids(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.ID
	}
	return out
}

func TestVisibleSegments_PerBreakpoint(t *testing.T) {
	tests := []struct {
		name string
		bp   Breakpoint
		want []string
	}{
		{"narrow", BreakpointNarrow, []string{"branch", "model"}},
		{"compact", BreakpointCompact, []string{"branch", "model", "tokens"}},
		{"normal", BreakpointNormal, []string{"branch", "model", "tokens"}},
		{"wide", BreakpointWide, []string{"branch", "model", "tokens", "cost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(VisibleSegments(testSegments(), tt.bp, DensityAuto))
			if len(got) != len(tt.want) {
				t.Fatalf("visible = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("visible[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVisibleSegments_MonotonicVisibility(t *testing.T) {
	// Each wider breakpoint must show a superset of the narrower one.
	order := []Breakpoint{BreakpointNarrow, BreakpointCompact, BreakpointNormal, BreakpointWide}

	var prev map[string]bool
	for _, bp := range order {
		cur := make(map[string]bool)
		for _, s := range VisibleSegments(testSegments(), bp, DensityAuto) {
			cur[s.ID] = true
		}
		for id := range prev {
			if !cur[id] {
				t.Errorf("segment %s visible at narrower tier but hidden at %s", id, bp)
			}
		}
		prev = cur
	}
}

func TestVisibleSegments_MediumHiddenAtNarrow(t *testing.T) {
	segs := []Segment{
		{ID: "only", Priority: PriorityMedium, Side: SideLeft, Label: "Only", Value: "x"},
	}
	got := VisibleSegments(segs, BreakpointNarrow, DensityAuto)
	if len(got) != 0 {
		t.Errorf("medium segment visible at narrow: %v", ids(got))
	}
}

func TestVisibleSegments_DensityCompactForcesNarrowSet(t *testing.T) {
	got := ids(VisibleSegments(testSegments(), BreakpointWide, DensityCompact))
	want := []string{"branch", "model"}
	if len(got) != len(want) {
		t.Fatalf("compact density at wide = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visible[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestVisibleSegments_DensityVerboseForcesWideSet(t *testing.T) {
	got := ids(VisibleSegments(testSegments(), BreakpointNarrow, DensityVerbose))
	if len(got) != 4 {
		t.Errorf("verbose density at narrow = %v, want all 4 segments", got)
	}
}

func TestVisibleSegments_VerboseOnlySegments(t *testing.T) {
	segs := append(testSegments(), Segment{
		ID: "timing", Priority: PriorityLow, Side: SideRight,
		Label: "Timing", Value: "render 2ms", VerboseOnly: true,
	})

	for _, density := range []Density{DensityAuto, DensityCompact} {
		for _, s := range VisibleSegments(segs, BreakpointWide, density) {
			if s.ID == "timing" {
				t.Errorf("verbose-only segment visible under density %s", density)
			}
		}
	}

	found := false
	for _, s := range VisibleSegments(segs, BreakpointNarrow, DensityVerbose) {
		if s.ID == "timing" {
			found = true
		}
	}
	if !found {
		t.Error("verbose-only segment missing under verbose density")
	}
}

func TestVisibleSegments_UnknownPriorityDropped(t *testing.T) {
	segs := []Segment{
		{ID: "ok", Priority: PriorityCritical, Side: SideLeft, Label: "OK", Value: "1"},
		{ID: "bogus", Priority: Priority(42), Side: SideLeft, Label: "Bogus", Value: "2"},
		{ID: "negative", Priority: Priority(-1), Side: SideLeft, Label: "Neg", Value: "3"},
	}
	got := ids(VisibleSegments(segs, BreakpointWide, DensityAuto))
	if len(got) != 1 || got[0] != "ok" {
		t.Errorf("visible = %v, want only [ok]", got)
	}
}

func TestVisibleSegments_LeftBeforeRightStableOrder(t *testing.T) {
	segs := []Segment{
		{ID: "r1", Priority: PriorityCritical, Side: SideRight, Label: "R1"},
		{ID: "l1", Priority: PriorityCritical, Side: SideLeft, Label: "L1"},
		{ID: "r2", Priority: PriorityHigh, Side: SideRight, Label: "R2"},
		{ID: "l2", Priority: PriorityHigh, Side: SideLeft, Label: "L2"},
	}
	got := ids(VisibleSegments(segs, BreakpointNarrow, DensityAuto))
	want := []string{"l1", "l2", "r1", "r2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestVisibleSegments_DoesNotMutateInput(t *testing.T) {
	segs := testSegments()
	VisibleSegments(segs, BreakpointNarrow, DensityAuto)
	if segs[2].ID != "tokens" || len(segs) != 4 {
		t.Error("input slice mutated by VisibleSegments")
	}
}

func TestPriorityFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"critical", PriorityCritical, true},
		{"high", PriorityHigh, true},
		{"medium", PriorityMedium, true},
		{"low", PriorityLow, true},
		{"urgent", Priority(-1), false},
		{"", Priority(-1), false},
	}
	for _, tt := range tests {
		got, ok := PriorityFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PriorityFromString(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

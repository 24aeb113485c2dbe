package config

import (
	"os"
	"path/filepath"
	"testing"

	"gitlab.com/tinyland/lab/statusdeck/display/diffview"
	"gitlab.com/tinyland/lab/statusdeck/display/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Thresholds().Valid() {
		t.Error("default thresholds should be valid")
	}
	if cfg.Breakpoints.NarrowMax != 60 || cfg.Breakpoints.CompactMax != 100 || cfg.Breakpoints.NormalMax != 160 {
		t.Errorf("default breakpoints = %+v, want 60/100/160", cfg.Breakpoints)
	}
	if cfg.Density() != layout.DensityAuto {
		t.Errorf("default density = %s, want auto", cfg.Density())
	}
	if cfg.AbbrevMode() != layout.AbbrevAuto {
		t.Errorf("default abbreviation = %s, want auto", cfg.AbbrevMode())
	}
	if cfg.DiffMode() != diffview.ModeAuto {
		t.Errorf("default diff mode = %s, want auto", cfg.DiffMode())
	}
	if cfg.Diff.SplitMinWidth != diffview.DefaultSplitMinWidth {
		t.Errorf("default split_min_width = %d, want %d", cfg.Diff.SplitMinWidth, diffview.DefaultSplitMinWidth)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig missing file: %v", err)
	}
	if cfg.Breakpoints.NarrowMax != 60 {
		t.Errorf("missing file did not fall back to defaults: %+v", cfg.Breakpoints)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg == nil || cfg.Breakpoints.CompactMax != 100 {
		t.Error("empty path should return defaults")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  narrow_max: 40
  compact_max: 80
  normal_max: 120
display:
  density: verbose
  abbreviation: full
diff:
  mode: split
  split_min_width: 100
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if th := cfg.Thresholds(); th.NarrowMax != 40 || th.CompactMax != 80 || th.NormalMax != 120 {
		t.Errorf("thresholds = %+v, want 40/80/120", th)
	}
	if cfg.Density() != layout.DensityVerbose {
		t.Errorf("density = %s, want verbose", cfg.Density())
	}
	if cfg.AbbrevMode() != layout.AbbrevFull {
		t.Errorf("abbreviation = %s, want full", cfg.AbbrevMode())
	}
	if cfg.DiffMode() != diffview.ModeSplit {
		t.Errorf("diff mode = %s, want split", cfg.DiffMode())
	}
	if cfg.Diff.SplitMinWidth != 100 {
		t.Errorf("split_min_width = %d, want 100", cfg.Diff.SplitMinWidth)
	}
}

func TestLoadConfig_RejectsUnorderedBreakpoints(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  narrow_max: 100
  compact_max: 60
  normal_max: 160
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("unordered breakpoints should fail validation")
	}
}

func TestLoadConfig_RejectsUnknownDiffMode(t *testing.T) {
	path := writeConfig(t, `
diff:
  mode: sideways
`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("unknown diff mode should fail validation")
	}
}

func TestLoadConfig_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "breakpoints: [not a map")
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed yaml should return an error")
	}
}

func TestBuildSegments_AbbrevDistinction(t *testing.T) {
	path := writeConfig(t, `
segments:
  - id: branch
    priority: critical
    side: left
    label: Branch
    abbrev: br
    value: main
  - id: cost
    priority: high
    side: right
    label: Cost
    abbrev: ""
    value: "$0.42"
  - id: model
    priority: high
    side: left
    label: Model
    value: opus
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	segs := cfg.BuildSegments()
	if len(segs) != 3 {
		t.Fatalf("built %d segments, want 3", len(segs))
	}

	if !segs[0].AbbrevSet || segs[0].Abbrev != "br" {
		t.Errorf("branch abbrev = (%q, set=%v), want (br, true)", segs[0].Abbrev, segs[0].AbbrevSet)
	}
	// Explicit empty string is a deliberate "value only" abbreviation.
	if !segs[1].AbbrevSet || segs[1].Abbrev != "" {
		t.Errorf("cost abbrev = (%q, set=%v), want (\"\", true)", segs[1].Abbrev, segs[1].AbbrevSet)
	}
	// Omitted key must remain unset so the resolver falls back to Label.
	if segs[2].AbbrevSet {
		t.Error("model abbrev should be unset when the key is omitted")
	}
}

func TestBuildSegments_UnknownPriorityFailsClosed(t *testing.T) {
	path := writeConfig(t, `
segments:
  - id: good
    priority: critical
    label: Good
    value: ok
  - id: bad
    priority: urgent
    label: Bad
    value: nope
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	segs := cfg.BuildSegments()
	visible := layout.VisibleSegments(segs, layout.BreakpointWide, layout.DensityAuto)
	for _, s := range visible {
		if s.ID == "bad" {
			t.Error("segment with unknown priority must be dropped, not shown")
		}
	}
	found := false
	for _, s := range visible {
		if s.ID == "good" {
			found = true
		}
	}
	if !found {
		t.Error("valid segment missing from output")
	}
}

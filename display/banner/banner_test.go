package banner

import (
	"context"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/statusdeck/config"
	"gitlab.com/tinyland/lab/statusdeck/display/text"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	br := "br"
	cfg.Segments = []config.SegmentConfig{
		{ID: "branch", Priority: "critical", Side: "left", Label: "Branch", Abbrev: &br, Value: "main"},
		{ID: "cost", Priority: "high", Side: "right", Label: "Cost", Value: "$0.42"},
		{ID: "hints", Priority: "low", Side: "left", Label: "Hints", Value: "press ?"},
	}
	return cfg
}

func TestGenerate_FitsWidth(t *testing.T) {
	b := NewBanner(BannerConfig{
		Config:      testConfig(),
		TermWidth:   80,
		TermHeight:  24,
		ShowDetails: true,
	})

	out, err := b.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for i, line := range strings.Split(out, "\n") {
		if w := text.StyledWidth(line); w > 80 {
			t.Errorf("line %d is %d columns wide, budget 80: %q", i, w, line)
		}
	}
}

func TestGenerate_StatusLineOnly(t *testing.T) {
	b := NewBanner(BannerConfig{
		Config:     testConfig(),
		TermWidth:  120,
		TermHeight: 40,
	})

	out, err := b.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("without details the frame should be a single line, got %q", out)
	}
	if !strings.Contains(out, "main") {
		t.Errorf("status line %q should include the branch value", out)
	}
}

func TestGenerate_NarrowDropsLowPriority(t *testing.T) {
	b := NewBanner(BannerConfig{
		Config:     testConfig(),
		TermWidth:  40,
		TermHeight: 24,
	})

	out, err := b.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(out, "press ?") {
		t.Errorf("narrow frame %q should drop the low-priority segment", out)
	}
	if !strings.Contains(out, "main") {
		t.Errorf("narrow frame %q should keep the critical segment", out)
	}
}

func TestGenerate_DetailsNameTier(t *testing.T) {
	b := NewBanner(BannerConfig{
		Config:      testConfig(),
		TermWidth:   170,
		TermHeight:  50,
		ShowDetails: true,
	})

	out, err := b.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out, "tier: wide") {
		t.Errorf("details should report the wide tier for width 170:\n%s", out)
	}
	if !strings.Contains(out, "170x50") {
		t.Errorf("details should report the terminal size:\n%s", out)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBanner(BannerConfig{Config: testConfig(), TermWidth: 80, TermHeight: 24})
	if _, err := b.Generate(ctx); err == nil {
		t.Error("cancelled context should return an error")
	}
}

func TestNewBanner_NilConfigUsesDefaults(t *testing.T) {
	b := NewBanner(BannerConfig{TermWidth: 80, TermHeight: 24, ShowDetails: true})
	out, err := b.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate with defaults: %v", err)
	}
	if !strings.Contains(out, "tier:") {
		t.Errorf("default banner should still render the detail frame, got %q", out)
	}
}

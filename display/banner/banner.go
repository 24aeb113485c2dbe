// Package banner renders the one-shot statusdeck frame: a responsive status
// line plus a boxed detail panel, sized to the current terminal.
package banner

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gitlab.com/tinyland/lab/statusdeck/config"
	"gitlab.com/tinyland/lab/statusdeck/display/layout"
	"gitlab.com/tinyland/lab/statusdeck/display/terminal"
	"gitlab.com/tinyland/lab/statusdeck/internal/format"
)

// BannerConfig controls one-shot frame generation.
type BannerConfig struct {
	// Config is the loaded statusdeck configuration.
	Config *config.Config
	// TermWidth overrides terminal width detection.
	TermWidth int
	// TermHeight overrides terminal height detection.
	TermHeight int
	// ShowDetails enables the boxed detail panel below the status line.
	ShowDetails bool
	// Logger for banner operations.
	Logger *slog.Logger
}

// DefaultBannerConfig returns sensible defaults for frame generation.
func DefaultBannerConfig() BannerConfig {
	return BannerConfig{
		Config:      config.DefaultConfig(),
		ShowDetails: true,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Banner renders the status frame from configuration and terminal state.
type Banner struct {
	config BannerConfig
}

// NewBanner creates a Banner with the given configuration.
// If Logger is nil, a no-op logger is used.
func NewBanner(cfg BannerConfig) *Banner {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Config == nil {
		cfg.Config = config.DefaultConfig()
	}
	return &Banner{config: cfg}
}

// Generate produces the complete frame string:
//  1. Resolve terminal dimensions (override, then detection, then fallback)
//  2. Classify the width into a layout tier
//  3. Compose the status line from the configured segments
//  4. Optionally append the boxed detail panel
func (b *Banner) Generate(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	cfg := b.config.Config
	dims := b.resolveDimensions()
	bp := layout.Classify(dims.Width, cfg.Thresholds())

	b.config.Logger.Debug("banner: resolved terminal",
		"width", dims.Width, "height", dims.Height,
		"detected", dims.Available, "tier", bp.String())

	segments := b.buildSegments()
	line := layout.ComposeLine(segments, layout.LineOptions{
		Width:         dims.Width,
		Breakpoint:    bp,
		Density:       cfg.Density(),
		Mode:          cfg.AbbrevMode(),
		MaxValueWidth: cfg.Display.MaxValueWidth,
	})

	if !b.config.ShowDetails {
		return line, nil
	}

	details := b.buildDetails(dims, bp)
	box := RenderBox(details, dims.Width, "statusdeck", RoundedBox, colorTitle)

	return line + "\n" + box, nil
}

// resolveDimensions applies explicit overrides before falling back to
// detection with an 80x24 floor.
func (b *Banner) resolveDimensions() terminal.Dimensions {
	if b.config.TermWidth > 0 && b.config.TermHeight > 0 {
		return terminal.Dimensions{
			Width:     b.config.TermWidth,
			Height:    b.config.TermHeight,
			Available: true,
		}
	}
	dims := terminal.GetDimensions(80, 24)
	if b.config.TermWidth > 0 {
		dims.Width = b.config.TermWidth
	}
	if b.config.TermHeight > 0 {
		dims.Height = b.config.TermHeight
	}
	return dims
}

// buildSegments returns the configured segments plus the built-in uptime
// segment. Uptime is verbose-only so it never crowds narrow terminals.
func (b *Banner) buildSegments() []layout.Segment {
	segments := b.config.Config.BuildSegments()

	if up := getSystemUptime(); up > 0 {
		segments = append(segments, layout.Segment{
			ID:          "uptime",
			Priority:    layout.PriorityLow,
			Side:        layout.SideRight,
			Label:       "Uptime",
			Abbrev:      "up",
			AbbrevSet:   true,
			Value:       format.FormatDuration(up),
			VerboseOnly: true,
		})
	}
	return segments
}

// buildDetails produces the content lines for the detail box.
func (b *Banner) buildDetails(dims terminal.Dimensions, bp layout.Breakpoint) []string {
	source := "detected"
	if !dims.Available {
		source = "fallback"
	}

	lines := []string{
		"terminal: " + strconv.Itoa(dims.Width) + "x" + strconv.Itoa(dims.Height) + " (" + source + ")",
		"tier: " + bp.String(),
		"density: " + b.config.Config.Density().String(),
	}

	if up := getSystemUptime(); up > 0 {
		lines = append(lines, "uptime: "+format.FormatDuration(up))
	}

	visible := layout.VisibleSegments(b.config.Config.BuildSegments(), bp, b.config.Config.Density())
	ids := make([]string, 0, len(visible))
	for _, s := range visible {
		ids = append(ids, s.ID)
	}
	if len(ids) > 0 {
		lines = append(lines, "segments: "+strings.Join(ids, ", "))
	}

	return lines
}

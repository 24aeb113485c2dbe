// Package config provides configuration parsing for statusdeck.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/statusdeck/display/diffview"
	"gitlab.com/tinyland/lab/statusdeck/display/layout"
)

// Config represents the statusdeck configuration.
type Config struct {
	// Breakpoints holds the terminal-width cut points between layout tiers.
	Breakpoints BreakpointsConfig `yaml:"breakpoints"`

	// Display holds rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Diff holds diff/code view layout settings.
	Diff DiffConfig `yaml:"diff"`

	// Segments is the status-line segment list, rendered in order.
	Segments []SegmentConfig `yaml:"segments"`
}

// BreakpointsConfig holds the width thresholds between layout tiers.
// The values must be strictly increasing.
type BreakpointsConfig struct {
	// NarrowMax is the first width that is no longer narrow.
	NarrowMax int `yaml:"narrow_max"`
	// CompactMax is the first width that is no longer compact.
	CompactMax int `yaml:"compact_max"`
	// NormalMax is the last width that is still normal.
	NormalMax int `yaml:"normal_max"`
}

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	// Density is the requested display density: "auto", "compact", or "verbose".
	Density string `yaml:"density"`
	// Abbreviation is the label policy: "auto", "full", or "abbreviated".
	Abbreviation string `yaml:"abbreviation"`
	// Color enables ANSI color output.
	Color bool `yaml:"color"`
	// MaxValueWidth truncates each segment value to this many columns.
	// Zero disables the per-value cap.
	MaxValueWidth int `yaml:"max_value_width"`
}

// DiffConfig holds diff/code view layout settings.
type DiffConfig struct {
	// Mode is the requested layout: "auto", "unified", "split", or "inline".
	Mode string `yaml:"mode"`
	// SplitMinWidth is the narrowest terminal that still gets a split view.
	SplitMinWidth int `yaml:"split_min_width"`
}

// SegmentConfig describes one status-line segment.
type SegmentConfig struct {
	// ID identifies the segment.
	ID string `yaml:"id"`
	// Priority is "critical", "high", "medium", or "low". Segments with an
	// unrecognized priority are silently dropped from output.
	Priority string `yaml:"priority"`
	// Side is "left" or "right" (default left).
	Side string `yaml:"side"`
	// Icon is an optional leading glyph.
	Icon string `yaml:"icon"`
	// Label is the full label text.
	Label string `yaml:"label"`
	// Abbrev is the short label for narrow widths. Omitting the key falls
	// back to Label; an explicit empty string means "value only, no label".
	Abbrev *string `yaml:"abbrev"`
	// Value is the segment's data text.
	Value string `yaml:"value"`
	// VerboseOnly shows the segment only under verbose density.
	VerboseOnly bool `yaml:"verbose_only"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Breakpoints: BreakpointsConfig{
			NarrowMax:  60,
			CompactMax: 100,
			NormalMax:  160,
		},
		Display: DisplayConfig{
			Density:      "auto",
			Abbreviation: "auto",
			Color:        true,
		},
		Diff: DiffConfig{
			Mode:          "auto",
			SplitMinWidth: diffview.DefaultSplitMinWidth,
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "statusdeck", "config.yaml")
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	if !c.Thresholds().Valid() {
		return fmt.Errorf("breakpoints must be strictly increasing: narrow_max=%d compact_max=%d normal_max=%d",
			c.Breakpoints.NarrowMax, c.Breakpoints.CompactMax, c.Breakpoints.NormalMax)
	}
	if c.Diff.SplitMinWidth < 0 {
		return fmt.Errorf("diff.split_min_width must not be negative: %d", c.Diff.SplitMinWidth)
	}
	if _, ok := diffview.ModeFromString(c.Diff.Mode); !ok {
		return fmt.Errorf("unknown diff.mode %q", c.Diff.Mode)
	}
	return nil
}

// Thresholds converts the configured breakpoints to layout thresholds.
func (c *Config) Thresholds() layout.Thresholds {
	return layout.Thresholds{
		NarrowMax:  c.Breakpoints.NarrowMax,
		CompactMax: c.Breakpoints.CompactMax,
		NormalMax:  c.Breakpoints.NormalMax,
	}
}

// Density returns the configured display density.
func (c *Config) Density() layout.Density {
	return layout.DensityFromString(c.Display.Density)
}

// AbbrevMode returns the configured label abbreviation policy.
func (c *Config) AbbrevMode() layout.AbbrevMode {
	return layout.AbbrevModeFromString(c.Display.Abbreviation)
}

// DiffMode returns the configured diff layout mode. Unrecognized names were
// rejected by Validate, so this defaults safely to auto.
func (c *Config) DiffMode() diffview.Mode {
	mode, _ := diffview.ModeFromString(c.Diff.Mode)
	return mode
}

// BuildSegments converts the configured segment list to layout segments.
// Unknown priority names map to an out-of-range value that the visibility
// filter drops, matching the fail-closed contract.
func (c *Config) BuildSegments() []layout.Segment {
	segs := make([]layout.Segment, 0, len(c.Segments))
	for _, sc := range c.Segments {
		priority, _ := layout.PriorityFromString(sc.Priority)

		seg := layout.Segment{
			ID:          sc.ID,
			Priority:    priority,
			Side:        layout.SideFromString(sc.Side),
			Icon:        sc.Icon,
			Label:       sc.Label,
			Value:       sc.Value,
			VerboseOnly: sc.VerboseOnly,
		}
		if sc.Abbrev != nil {
			seg.Abbrev = *sc.Abbrev
			seg.AbbrevSet = true
		}
		segs = append(segs, seg)
	}
	return segs
}

// Package terminal reports the current terminal dimensions.
// Detection never fails: TTY query first, then COLUMNS/LINES environment
// variables, then caller-supplied fallbacks.
package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Dimensions is a snapshot of the terminal size. A fresh value is produced
// for each render pass and never mutated, only replaced.
type Dimensions struct {
	// Width is the terminal width in columns, always >= 1.
	Width int
	// Height is the terminal height in rows, always >= 1.
	Height int
	// Available reports whether real dimensions were detected. False means
	// the fallback values are in use.
	Available bool
}

// GetDimensions returns the current terminal dimensions. On failure to
// query the terminal it returns the fallbacks with Available=false rather
// than an error. All returned values are clamped to at least 1.
func GetDimensions(fallbackWidth, fallbackHeight int) Dimensions {
	// TTY query via stdout.
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return normalize(Dimensions{Width: w, Height: h, Available: true})
	}

	// Environment variables, set by most shells.
	w := envInt("COLUMNS")
	h := envInt("LINES")
	if w > 0 && h > 0 {
		return normalize(Dimensions{Width: w, Height: h, Available: true})
	}

	return normalize(Dimensions{Width: fallbackWidth, Height: fallbackHeight, Available: false})
}

// envInt parses a positive integer environment variable, returning 0 when
// unset or malformed.
func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// normalize clamps both dimensions to at least 1 so downstream width
// arithmetic never sees zero or negative values.
func normalize(d Dimensions) Dimensions {
	if d.Width < 1 {
		d.Width = 1
	}
	if d.Height < 1 {
		d.Height = 1
	}
	return d
}

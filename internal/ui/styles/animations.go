// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// DotsSpinner - Classic three-dot animation, shown while a reply is pending
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// LineSpinner - Simple line rotation
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// Bubble converts the config into a bubbles spinner definition.
func (s SpinnerConfig) Bubble() spinner.Spinner {
	return spinner.Spinner{Frames: s.Frames, FPS: s.Duration()}
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

var (
	ProgressFull  = "#"
	ProgressEmpty = "-"
)

// RenderProgressBar creates a bar of width cells filled to percent (0-100).
func RenderProgressBar(width int, percent float64) string {
	filled, empty := progressCells(width, percent)
	return strings.Repeat(ProgressFull, filled) + strings.Repeat(ProgressEmpty, empty)
}

// RenderMeter draws the token usage bar with the theme's colors. Right-to-left
// layouts fill from the right edge.
func (t *Theme) RenderMeter(width int, used, total int, rtl bool) string {
	percent := 0.0
	if total > 0 {
		percent = float64(used) * 100 / float64(total)
	}
	filled, empty := progressCells(width, percent)
	fill := t.ProgressFill.Render(strings.Repeat(ProgressFull, filled))
	track := t.ProgressTrack.Render(strings.Repeat(ProgressEmpty, empty))
	if rtl {
		return track + fill
	}
	return fill + track
}

func progressCells(width int, percent float64) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled = int(float64(width) * percent / 100)
	return filled, width - filled
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerConfig_Duration(t *testing.T) {
	assert.Equal(t, time.Second/6, DotsSpinner.Duration())
	assert.Equal(t, time.Second/10, LineSpinner.Duration())
	assert.Equal(t, time.Second, SpinnerConfig{}.Duration())
}

func TestSpinnerConfig_Bubble(t *testing.T) {
	s := DotsSpinner.Bubble()
	assert.Equal(t, DotsSpinner.Frames, s.Frames)
	assert.Equal(t, DotsSpinner.Duration(), s.FPS)
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    string
	}{
		{10, 0, "----------"},
		{10, 50, "#####-----"},
		{10, 100, "##########"},
		{10, 150, "##########"},
		{10, -5, "----------"},
		{4, 25, "#---"},
		{0, 50, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RenderProgressBar(tc.width, tc.percent))
	}
}

func TestRenderMeter_Direction(t *testing.T) {
	theme := NewThemeFor(&bytes.Buffer{}, ModeDark)

	ltr := ansi.Strip(theme.RenderMeter(10, 5000, 10000, false))
	rtl := ansi.Strip(theme.RenderMeter(10, 5000, 10000, true))

	assert.Equal(t, "#####-----", ltr)
	assert.Equal(t, "-----#####", rtl)
	assert.Equal(t, strings.Repeat("-", 8), ansi.Strip(theme.RenderMeter(8, 1, 0, false)))
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

// FormatNumber formats a number with thousand separators.
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// Row joins blocks horizontally in reading order. Right-to-left rows place
// the first block at the right edge.
func Row(rtl bool, blocks ...string) string {
	if rtl {
		reversed := make([]string, len(blocks))
		for i, b := range blocks {
			reversed[len(blocks)-1-i] = b
		}
		blocks = reversed
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Spread places start and end at opposite edges of width. In right-to-left
// mode start sits on the right.
func Spread(width int, start, end string, rtl bool) string {
	if rtl {
		start, end = end, start
	}
	gap := width - lipgloss.Width(start) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, start, strings.Repeat(" ", gap), end)
}

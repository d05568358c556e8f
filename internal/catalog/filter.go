// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

// Filter returns the tools whose name or description in lang contains query,
// ignoring case. Order is preserved. An empty query returns every tool.
func Filter(tools []model.Tool, query string, lang model.Language) []model.Tool {
	if query == "" {
		return append([]model.Tool{}, tools...)
	}

	// A Caser holds state and is not safe for concurrent use.
	fold := cases.Fold()
	needle := normalize(fold, query)

	out := make([]model.Tool, 0, len(tools))
	for _, t := range tools {
		if strings.Contains(normalize(fold, t.Name.In(lang)), needle) ||
			strings.Contains(normalize(fold, t.Description.In(lang)), needle) {
			out = append(out, t)
		}
	}
	return out
}

func normalize(fold cases.Caser, s string) string {
	return fold.String(norm.NFC.String(s))
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Text holds one string per supported language.
type Text struct {
	Ar string `yaml:"ar" json:"ar"`
	En string `yaml:"en" json:"en"`
}

// In returns the variant for lang, falling back to Arabic.
func (t Text) In(lang Language) string {
	if lang == LangEnglish && t.En != "" {
		return t.En
	}
	return t.Ar
}

// TextList holds one string list per supported language.
type TextList struct {
	Ar []string `yaml:"ar" json:"ar"`
	En []string `yaml:"en" json:"en"`
}

// In returns the list for lang, falling back to Arabic.
func (t TextList) In(lang Language) []string {
	if lang == LangEnglish && len(t.En) > 0 {
		return t.En
	}
	return t.Ar
}

// Category groups AI tools in the catalog.
type Category string

const (
	CategoryText     Category = "text"
	CategoryImage    Category = "image"
	CategoryAudio    Category = "audio"
	CategoryVideo    Category = "video"
	CategoryAnalysis Category = "analysis"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryText, CategoryImage, CategoryAudio, CategoryVideo, CategoryAnalysis:
		return true
	}
	return false
}

// Tool describes one AI service offered in the catalog.
type Tool struct {
	ID          string   `yaml:"id" json:"id"`
	Name        Text     `yaml:"name" json:"name"`
	Description Text     `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Category    Category `yaml:"category" json:"category"`
	TokenCost   int      `yaml:"token_cost" json:"token_cost"`
}

// Plan is a subscription tier on the pricing page.
type Plan struct {
	ID       string   `yaml:"id" json:"id"`
	Name     Text     `yaml:"name" json:"name"`
	Price    int      `yaml:"price" json:"price"`
	Tokens   int      `yaml:"tokens" json:"tokens"`
	Features TextList `yaml:"features" json:"features"`
	Current  bool     `yaml:"current" json:"current"`
}

// SettingsTab is an entry of the settings panel menu.
type SettingsTab struct {
	ID    string `yaml:"id" json:"id"`
	Label Text   `yaml:"label" json:"label"`
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// =============================================================================
// LANGUAGE TYPE
// =============================================================================

// Language is a UI language code.
type Language string

const (
	LangArabic  Language = "ar"
	LangEnglish Language = "en"
)

// DefaultLanguage is used when nothing else is configured.
const DefaultLanguage = LangArabic

// Direction is the text direction of a language.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

var supported = []language.Tag{language.Arabic, language.English}

var matcher = language.NewMatcher(supported)

// Languages returns the supported languages, default first.
func Languages() []Language {
	return []Language{LangArabic, LangEnglish}
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LangArabic || l == LangEnglish
}

// Direction returns RTL for Arabic and LTR for English.
func (l Language) Direction() Direction {
	if l == LangArabic {
		return RTL
	}
	return LTR
}

// IsRTL reports whether the language is written right-to-left.
func (l Language) IsRTL() bool {
	return l.Direction() == RTL
}

// Toggle flips between Arabic and English.
func (l Language) Toggle() Language {
	if l == LangArabic {
		return LangEnglish
	}
	return LangArabic
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if l == LangEnglish {
		return language.English
	}
	return language.Arabic
}

// ParseLanguage accepts "ar" and "en" and also full BCP 47 tags or locale
// strings such as "en-US" or "ar_SA.UTF-8", matched to the closest supported
// language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLanguage, fmt.Errorf("empty language")
	}
	if l := Language(strings.ToLower(s)); l.Valid() {
		return l, nil
	}

	// Strip POSIX locale decorations (en_US.UTF-8 -> en-US)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")

	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLanguage, fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage, fmt.Errorf("unsupported language %q", s)
	}
	if supported[idx] == language.English {
		return LangEnglish, nil
	}
	return LangArabic, nil
}

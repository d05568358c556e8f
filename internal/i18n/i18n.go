// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides the bilingual string tables of the dashboard.
//
// Tables are embedded YAML files, one per language, loaded once at startup.
// Lookups fall back to the default language and then to the key itself, so
// rendering never fails on a missing entry.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultBundle = mustLoadEmbedded()

// Bundle holds one flat key->text table per language.
type Bundle struct {
	tables map[model.Language]map[string]string
}

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Default returns the embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// T looks up key in the default bundle.
func T(lang model.Language, key string) string {
	return defaultBundle.T(lang, key)
}

// LoadFromFS loads locales/*.yaml from fsys. Every supported language must
// be present and every language must define the same keys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{tables: make(map[model.Language]map[string]string, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}

	for _, lang := range model.Languages() {
		if _, ok := b.tables[lang]; !ok {
			return nil, fmt.Errorf("locale %q is not defined", lang)
		}
	}
	if err := b.checkParity(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file localeFile) error {
	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	lang := model.Language(strings.TrimSpace(file.Locale))
	if !lang.Valid() {
		return fmt.Errorf("locale %s: unsupported locale %q", p, file.Locale)
	}
	if string(lang) != fromPath {
		return fmt.Errorf("locale %s: locale %q must match file name %q", p, lang, fromPath)
	}
	if _, exists := b.tables[lang]; exists {
		return fmt.Errorf("locale %s: %q already loaded", p, lang)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("locale %s: messages are required", p)
	}

	table := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("locale %s: message key cannot be blank", p)
		}
		table[key] = value
	}
	b.tables[lang] = table
	return nil
}

func (b *Bundle) checkParity() error {
	base := b.tables[model.DefaultLanguage]
	for lang, table := range b.tables {
		if lang == model.DefaultLanguage {
			continue
		}
		for key := range base {
			if _, ok := table[key]; !ok {
				return fmt.Errorf("locale %q: missing key %q", lang, key)
			}
		}
		for key := range table {
			if _, ok := base[key]; !ok {
				return fmt.Errorf("locale %q: key %q not in %q", lang, key, model.DefaultLanguage)
			}
		}
	}
	return nil
}

// Lookup returns the text for key in lang without fallback.
func (b *Bundle) Lookup(lang model.Language, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b.tables[lang][key]
	return v, ok
}

// T returns the text for key in lang, falling back to the default language
// and finally to the key itself.
func (b *Bundle) T(lang model.Language, key string) string {
	if v, ok := b.Lookup(lang, key); ok {
		return v
	}
	if v, ok := b.Lookup(model.DefaultLanguage, key); ok {
		return v
	}
	return key
}

// Tf formats the text for key with args.
func (b *Bundle) Tf(lang model.Language, key string, args ...any) string {
	return fmt.Sprintf(b.T(lang, key), args...)
}

// Keys returns the sorted keys of a language table.
func (b *Bundle) Keys(lang model.Language) []string {
	if b == nil {
		return nil
	}
	table := b.tables[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadFromFS(embeddedLocales)
	if err != nil {
		panic(err)
	}
	return b
}

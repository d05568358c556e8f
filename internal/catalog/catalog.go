// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog provides the read-only AI tool catalog, the pricing plans
// and the settings menu, plus the client-side tool search.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

//go:embed data/*.yaml
var embeddedData embed.FS

var defaultCatalog = mustLoadEmbedded()

// Catalog is the immutable set of static records shown by the dashboard.
type Catalog struct {
	tools        []model.Tool
	plans        []model.Plan
	settingsTabs []model.SettingsTab
}

type toolsFile struct {
	Tools []model.Tool `yaml:"tools"`
}

type plansFile struct {
	Plans []model.Plan `yaml:"plans"`
}

type settingsFile struct {
	Tabs []model.SettingsTab `yaml:"settings_tabs"`
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// LoadFromFS reads data/tools.yaml, data/plans.yaml and data/settings.yaml
// from fsys and validates them.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	var tf toolsFile
	if err := decode(fsys, "data/tools.yaml", &tf); err != nil {
		return nil, err
	}
	var pf plansFile
	if err := decode(fsys, "data/plans.yaml", &pf); err != nil {
		return nil, err
	}
	var sf settingsFile
	if err := decode(fsys, "data/settings.yaml", &sf); err != nil {
		return nil, err
	}

	c := &Catalog{tools: tf.Tools, plans: pf.Plans, settingsTabs: sf.Tabs}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	if len(c.tools) == 0 {
		return fmt.Errorf("tools: catalog is empty")
	}
	seen := make(map[string]bool, len(c.tools))
	for i, t := range c.tools {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("tools[%d]: id is required", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("tools[%d]: duplicate id %q", i, t.ID)
		}
		seen[t.ID] = true
		if err := checkText(t.Name); err != nil {
			return fmt.Errorf("tool %q: name: %w", t.ID, err)
		}
		if err := checkText(t.Description); err != nil {
			return fmt.Errorf("tool %q: description: %w", t.ID, err)
		}
		if !t.Category.Valid() {
			return fmt.Errorf("tool %q: unknown category %q", t.ID, t.Category)
		}
		if t.TokenCost < 0 {
			return fmt.Errorf("tool %q: negative token cost", t.ID)
		}
	}

	current := 0
	for i, p := range c.plans {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("plans[%d]: id is required", i)
		}
		if err := checkText(p.Name); err != nil {
			return fmt.Errorf("plan %q: name: %w", p.ID, err)
		}
		if len(p.Features.Ar) == 0 || len(p.Features.En) == 0 {
			return fmt.Errorf("plan %q: features need both ar and en", p.ID)
		}
		if p.Current {
			current++
		}
	}
	if current > 1 {
		return fmt.Errorf("plans: %d plans marked current", current)
	}

	for i, tab := range c.settingsTabs {
		if strings.TrimSpace(tab.ID) == "" {
			return fmt.Errorf("settings_tabs[%d]: id is required", i)
		}
		if err := checkText(tab.Label); err != nil {
			return fmt.Errorf("settings tab %q: label: %w", tab.ID, err)
		}
	}
	return nil
}

func checkText(t model.Text) error {
	if strings.TrimSpace(t.Ar) == "" {
		return fmt.Errorf("missing ar")
	}
	if strings.TrimSpace(t.En) == "" {
		return fmt.Errorf("missing en")
	}
	return nil
}

// Tools returns the tool catalog in display order.
func (c *Catalog) Tools() []model.Tool {
	return append([]model.Tool(nil), c.tools...)
}

// Plans returns the pricing plans in display order.
func (c *Catalog) Plans() []model.Plan {
	return append([]model.Plan(nil), c.plans...)
}

// SettingsTabs returns the settings menu entries in display order.
func (c *Catalog) SettingsTabs() []model.SettingsTab {
	return append([]model.SettingsTab(nil), c.settingsTabs...)
}

// ByID returns the tool with the given id.
func (c *Catalog) ByID(id string) (model.Tool, bool) {
	for _, t := range c.tools {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tool{}, false
}

// Categories returns the distinct tool categories in catalog order.
func (c *Catalog) Categories() []model.Category {
	var out []model.Category
	seen := make(map[model.Category]bool)
	for _, t := range c.tools {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// CurrentPlan returns the plan the user is subscribed to.
func (c *Catalog) CurrentPlan() (model.Plan, bool) {
	for _, p := range c.plans {
		if p.Current {
			return p, true
		}
	}
	return model.Plan{}, false
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadFromFS(embeddedData)
	if err != nil {
		panic(err)
	}
	return c
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/catalog"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/i18n"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/components"
)

var (
	toolsJSON     bool
	toolsCategory string
	plansJSON     bool
)

var toolsCmd = &cobra.Command{
	Use:   "tools [query]",
	Short: "Search the AI tool catalog",
	Long: `List the AI tools whose name or description contains the query.

Matching ignores case and uses the selected language, so an Arabic query
needs --lang ar (the default). Without a query every tool is listed.

Examples:
  zamam tools
  zamam tools link --lang en
  zamam tools --category image --json`,
	RunE: runTools,
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List subscription plans",
	Args:  cobra.NoArgs,
	RunE:  runPlans,
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output as JSON")
	toolsCmd.Flags().StringVar(&toolsCategory, "category", "", "Only list tools in this category (text, image, audio, video, analysis)")
	plansCmd.Flags().BoolVar(&plansJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(toolsCmd, plansCmd)
}

// listingLanguage resolves the language without opening a session.
func listingLanguage() (model.Language, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return "", err
	}
	return resolveLanguage(cfg)
}

// =============================================================================
// TOOLS
// =============================================================================

func runTools(cmd *cobra.Command, args []string) error {
	lang, err := listingLanguage()
	if err != nil {
		return err
	}
	category := model.Category(strings.ToLower(toolsCategory))
	if category != "" && !category.Valid() {
		return fmt.Errorf("unknown category %q", toolsCategory)
	}

	query := strings.Join(args, " ")
	found := catalog.Filter(catalog.Default().Tools(), query, lang)
	if category != "" {
		kept := found[:0]
		for _, t := range found {
			if t.Category == category {
				kept = append(kept, t)
			}
		}
		found = kept
	}

	out := cmd.OutOrStdout()
	if toolsJSON {
		return OutputJSON(out, "tools", func() (any, error) {
			data := make([]ToolData, len(found))
			for i, t := range found {
				data[i] = ToolData{
					ID:          t.ID,
					Name:        t.Name.In(lang),
					Description: t.Description.In(lang),
					Category:    string(t.Category),
					TokenCost:   t.TokenCost,
				}
			}
			return data, nil
		})
	}

	writeBlock(out, lang, TitleStyle.Render(i18n.T(lang, "tools")))
	if len(found) == 0 {
		writeBlock(out, lang, DimStyle.Render(i18n.T(lang, "noToolsFound")))
		return nil
	}
	for _, t := range found {
		writeBlock(out, lang, renderTool(t, lang))
	}
	return nil
}

func renderTool(t model.Tool, lang model.Language) string {
	cost := CostStyle.Render(fmt.Sprintf("%s %s", components.FormatNumber(t.TokenCost), i18n.T(lang, "tokens")))
	head := NameStyle.Render(t.Name.In(lang)) + "  " + cost
	if lang.IsRTL() {
		head = cost + "  " + NameStyle.Render(t.Name.In(lang))
	}
	return strings.Join([]string{
		head,
		ValueStyle.Render(t.Description.In(lang)),
		DimStyle.Render(fmt.Sprintf("%s · %s", t.ID, t.Category)),
		"",
	}, "\n")
}

// =============================================================================
// PLANS
// =============================================================================

func runPlans(cmd *cobra.Command, _ []string) error {
	lang, err := listingLanguage()
	if err != nil {
		return err
	}
	plans := catalog.Default().Plans()

	out := cmd.OutOrStdout()
	if plansJSON {
		return OutputJSON(out, "plans", func() (any, error) {
			data := make([]PlanData, len(plans))
			for i, p := range plans {
				data[i] = PlanData{
					ID:       p.ID,
					Name:     p.Name.In(lang),
					Price:    p.Price,
					Tokens:   p.Tokens,
					Features: p.Features.In(lang),
					Current:  p.Current,
				}
			}
			return data, nil
		})
	}

	writeBlock(out, lang, TitleStyle.Render(i18n.T(lang, "plans")))
	for _, p := range plans {
		writeBlock(out, lang, renderPlan(p, lang))
	}
	return nil
}

func renderPlan(p model.Plan, lang model.Language) string {
	lines := []string{
		NameStyle.Render(p.Name.In(lang)),
		CostStyle.Render(fmt.Sprintf("$%d%s", p.Price, i18n.T(lang, "perMonth"))) +
			"  " + ValueStyle.Render(fmt.Sprintf("%s %s", components.FormatNumber(p.Tokens), i18n.T(lang, "smartTokens"))),
	}
	if p.Current {
		lines = append(lines, SuccessStyle.Render(i18n.T(lang, "currentPlan")))
	}
	for _, f := range p.Features.In(lang) {
		lines = append(lines, "- "+f)
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// writeBlock prints s, right-aligned to the terminal width for Arabic.
func writeBlock(w io.Writer, lang model.Language, s string) {
	if lang.IsRTL() {
		s = lipgloss.NewStyle().Width(GetTerminalWidth()).Align(lipgloss.Right).Render(s)
	}
	printf(w, "%s\n", s)
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the Zamam configuration",
	Long: `Show or change the Zamam configuration.

Keys use dot notation and the names found in the file, for example:

  zamam config get ui.theme
  zamam config set language en
  zamam config set gemini.api_key <key>

The API key is never printed; show and get display a fingerprint instead.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one value in the configuration file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", path)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, k := range config.Keys() {
			printf(cmd.OutOrStdout(), "%s\n", k)
		}
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "Output as JSON")
	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configPathCmd, configKeysCmd)
	rootCmd.AddCommand(configCmd)
}

// configFilePath is --config when given, else the file Load reads.
func configFilePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.ActivePath()
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	safe := cfg.Redacted()
	out := cmd.OutOrStdout()

	if configJSON {
		return OutputJSON(out, "config show", func() (any, error) {
			return safe, nil
		})
	}

	printf(out, "%s\n", DimStyle.Render("# "+path))
	if err := toml.NewEncoder(out).Encode(safe); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := cfg.Redacted().Get(args[0])
	if err != nil {
		return err
	}
	printf(cmd.OutOrStdout(), "%v\n", v)
	return nil
}

// runConfigSet edits the file itself, so environment overrides are not
// written back.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	path, err := configFilePath()
	if err != nil {
		return err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if err := readConfigFile(cfg, path); err != nil {
			return err
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}
	cfg.SetDefaults()

	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := writeConfigFile(cfg, path); err != nil {
		return err
	}

	shown, _ := cfg.Redacted().Get(key)
	printf(cmd.OutOrStdout(), "%s %s = %v\n", SuccessStyle.Render("[OK]"), key, shown)
	return nil
}

func readConfigFile(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.LoadJSON(cfg, path)
	}
	return config.LoadTOML(cfg, path)
}

func writeConfigFile(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}

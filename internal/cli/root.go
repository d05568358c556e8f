// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/assistant"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/gemini"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/session"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/app"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/ui/styles"
)

var (
	verbose    bool
	langFlag   string
	configPath string

	// Set with -ldflags "-X .../internal/cli.version=..."
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// newProvider builds the AI provider for a configuration.
var newProvider = func(cfg *config.Config, logger *log.Logger) gemini.Provider {
	return gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithRequestsPerMinute(cfg.Gemini.RequestsPerMinute),
		gemini.WithLogger(logger),
	)
}

// rootCmd opens the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "zamam",
	Short: "Zamam - control your business from the terminal",
	Long: `Zamam is a bilingual (Arabic / English) business dashboard with an
AI assistant and a catalog of AI tools.

Running zamam with no arguments opens the dashboard. Arabic is the default
language; press ctrl+l inside the dashboard or pass --lang en to switch.

Quick Start:
  zamam                          # Open the dashboard
  zamam ask "Write a tagline"    # One prompt, answer printed as Markdown
  zamam chat                     # Chat with the assistant in the terminal
  zamam tools link               # Search the AI tool catalog

The AI assistant needs a Gemini API key in GEMINI_API_KEY or in the config
file (zamam config set gemini.api_key <key>).`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Display language: ar or en (default from config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use instead of ~/.zamam/config.toml")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// =============================================================================
// DASHBOARD
// =============================================================================

func runDashboard(cmd *cobra.Command, _ []string) error {
	if err := RequiresTTY("open the dashboard"); err != nil {
		return err
	}
	rt, err := newRunEnv(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := app.New(rt.session, app.Options{
		Theme:    styles.ParseMode(rt.cfg.UI.Theme),
		Markdown: rt.cfg.UI.Markdown,
		Logger:   rt.logger,
		Ctx:      ctx,
	})
	return app.Run(ctx, m, app.RunOptions{
		AltScreen:  rt.cfg.UI.AltScreen,
		ConfigPath: rt.cfgPath,
	})
}

// =============================================================================
// SHARED RUNTIME
// =============================================================================

// runEnv is what every command that talks to the assistant needs.
type runEnv struct {
	cfg      *config.Config
	cfgPath  string
	logger   *log.Logger
	session  *session.Session
	closeLog func() error
}

// newRunEnv loads the configuration, installs the logger and opens a
// session. Commands that own the terminal log to the file in the Zamam
// home directory; the rest log to stderr.
func newRunEnv(cmd *cobra.Command, logToFile bool) (*runEnv, error) {
	cfg, path, err := loadConfig()
	if err != nil {
		return nil, err
	}
	lang, err := resolveLanguage(cfg)
	if err != nil {
		return nil, err
	}

	opts := logging.Options{
		Verbose: verbose || cfg.Verbose(),
		Writer:  cmd.ErrOrStderr(),
	}
	if logToFile {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		opts.Dir = dir
	}
	logger, closeLog, err := logging.Setup(opts)
	if err != nil {
		return nil, err
	}

	a := assistant.New(newProvider(cfg, logger),
		assistant.WithModel(cfg.Gemini.Model),
		assistant.WithLogger(logger),
	)
	s := session.New(a,
		session.WithLanguage(lang),
		session.WithLogger(logger),
	)
	logger.Debug("CLI_START", "command", cmd.Name(), "config", path, "model", cfg.Gemini.Model,
		"key", gemini.Fingerprint(cfg.Gemini.APIKey))

	return &runEnv{
		cfg:      cfg,
		cfgPath:  path,
		logger:   logger,
		session:  s,
		closeLog: closeLog,
	}, nil
}

// Close releases the log file.
func (r *runEnv) Close() {
	if r.closeLog != nil {
		_ = r.closeLog()
	}
}

// loadConfig reads --config when given, else the default location.
func loadConfig() (*config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, configPath, nil
	}
	path, err := config.ActivePath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// resolveLanguage applies --lang over the configured language.
func resolveLanguage(cfg *config.Config) (model.Language, error) {
	if langFlag == "" {
		return cfg.Lang(), nil
	}
	lang, err := model.ParseLanguage(langFlag)
	if err != nil {
		return "", fmt.Errorf("invalid --lang %q: %w", langFlag, err)
	}
	return lang, nil
}

// printf writes to w and ignores the error, like fmt.Printf.
func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/config"
)

// RunOptions controls how the program is started.
type RunOptions struct {
	AltScreen bool
	// ConfigPath is watched for changes when set and present on disk.
	ConfigPath string
}

// Run starts the dashboard and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m *Model, opts RunOptions) error {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)

	if opts.ConfigPath != "" {
		if _, err := os.Stat(opts.ConfigPath); err == nil {
			w, err := config.NewWatcher(opts.ConfigPath, func(cfg *config.Config) {
				p.Send(ConfigChangedMsg{Config: cfg})
			}, m.logger)
			if err != nil {
				return fmt.Errorf("watch config: %w", err)
			}
			if err := w.Start(); err != nil {
				m.logger.Warn("CONFIG_WATCH_UNAVAILABLE", "path", opts.ConfigPath, "err", err)
			}
			defer w.Close()
		}
	}

	m.logger.Info("UI_START", "session", m.Session().ID()[:8], "view", m.Session().State().View)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	m.logger.Info("UI_STOP", "duration", m.Session().Duration().Round(time.Millisecond))
	return err
}

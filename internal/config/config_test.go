// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binawad1-crypto/Zamam-AI-g/internal/gemini"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/logging"
	"github.com/binawad1-crypto/Zamam-AI-g/internal/model"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ZAMAM_HOME", dir)
	for _, k := range []string{"ZAMAM_LANG", "ZAMAM_MODEL", "GEMINI_API_KEY", "API_KEY", "ZAMAM_RPM"} {
		t.Setenv(k, "")
	}
	return dir
}

// =============================================================================
// DEFAULTS AND LOADING
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "ar", cfg.Language)
	assert.Equal(t, model.LangArabic, cfg.Lang())
	assert.Equal(t, gemini.DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.Markdown)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	toml := "language = \"en\"\n[gemini]\nmodel = \"gemini-2.5-flash\"\nrequests_per_minute = 10\n[ui]\ntheme = \"light\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, model.LangEnglish, cfg.Lang())
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 10, cfg.Gemini.RequestsPerMinute)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Logging.Level, "unset fields keep defaults")
}

func TestLoad_JSONFallback(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"language":"en"}`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)

	path, err := ActivePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.json"), path)
}

func TestLoad_Invalid(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("language = \"fr\"\n[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := Load()
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
	assert.Equal(t, "language", verrs[0].Field)
	assert.Equal(t, "ui.theme", verrs[1].Field)
}

func TestLoad_Malformed(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("language = [\n"), 0600))
	_, err := Load()
	assert.ErrorContains(t, err, "decode TOML")
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ZAMAM_LANG", "en_US.UTF-8")
	t.Setenv("ZAMAM_MODEL", "gemini-pro-x")
	t.Setenv("API_KEY", "from-api-key")
	t.Setenv("ZAMAM_RPM", "12")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "gemini-pro-x", cfg.Gemini.Model)
	assert.Equal(t, "from-api-key", cfg.Gemini.APIKey)
	assert.Equal(t, 12, cfg.Gemini.RequestsPerMinute)

	t.Setenv("GEMINI_API_KEY", "from-gemini")
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "from-gemini", cfg.Gemini.APIKey, "GEMINI_API_KEY wins over API_KEY")
}

func TestApplyEnvOverrides_IgnoresGarbage(t *testing.T) {
	isolate(t)
	t.Setenv("ZAMAM_LANG", "klingon!!")
	t.Setenv("ZAMAM_RPM", "fast")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "ar", cfg.Language)
	assert.Equal(t, 60, cfg.Gemini.RequestsPerMinute)
}

// =============================================================================
// GET / SET
// =============================================================================

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("language", "en"))
	require.NoError(t, cfg.Set("gemini.api_key", "k"))
	require.NoError(t, cfg.Set("gemini.requests_per_minute", "5"))
	require.NoError(t, cfg.Set("ui.markdown", "false"))
	require.NoError(t, cfg.Set("ui.alt-screen", false))

	v, err := cfg.Get("language")
	require.NoError(t, err)
	assert.Equal(t, "en", v)
	assert.Equal(t, "k", cfg.Gemini.APIKey)
	assert.Equal(t, 5, cfg.Gemini.RequestsPerMinute)
	assert.False(t, cfg.UI.Markdown)
	assert.False(t, cfg.UI.AltScreen)
}

func TestGetSet_Errors(t *testing.T) {
	cfg := Default()
	tests := []struct {
		name string
		err  error
	}{
		{"unknown", cfg.Set("nope", "x")},
		{"nested unknown", cfg.Set("ui.nope", "x")},
		{"section", cfg.Set("ui", "x")},
		{"through scalar", cfg.Set("language.x", "x")},
		{"bad int", cfg.Set("gemini.requests_per_minute", "many")},
		{"bad bool", cfg.Set("ui.markdown", "perhaps")},
		{"empty", cfg.Set("", "x")},
	}
	for _, tc := range tests {
		assert.Error(t, tc.err, tc.name)
	}
	_, err := cfg.Get("gemini.missing")
	assert.ErrorContains(t, err, "unknown field: gemini.missing")
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Contains(t, keys, "language")
	assert.Contains(t, keys, "gemini.api_key")
	assert.Contains(t, keys, "ui.theme")
	assert.Contains(t, keys, "logging.level")

	cfg := Default()
	for _, k := range keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}

// =============================================================================
// SAVE AND REDACTION
// =============================================================================

func TestSave_RoundTrip(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Language = "en"
	cfg.Gemini.APIKey = "secret"
	require.NoError(t, Save(cfg))

	path := filepath.Join(dir, "config.toml")
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	isolate(t)
	cfg := Default()
	cfg.UI.Theme = "auto"
	require.NoError(t, SaveJSON(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "auto", loaded.UI.Theme)
}

func TestString_Redacts(t *testing.T) {
	cfg := Default()
	cfg.Gemini.APIKey = "super-secret-key"
	out := cfg.String()
	assert.NotContains(t, out, "super-secret-key")
	assert.Contains(t, out, "REDACTED")
	assert.Equal(t, "super-secret-key", cfg.Gemini.APIKey, "redaction works on a copy")
}

func TestValidateErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
	err := ValidateErrors{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}
	assert.Equal(t, "a: x; b: y", err.Error())
}

// =============================================================================
// WATCHER
// =============================================================================

func TestWatcher_ReloadsOnSave(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c }, logging.Discard())
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Close()

	updated := Default()
	updated.Language = "en"
	require.NoError(t, SaveTOML(updated, path))

	select {
	case c := <-changes:
		assert.Equal(t, "en", c.Language)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestWatcher_SkipsInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c }, logging.Discard())
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	require.NoError(t, w.Start())
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("=", 3)), 0600))

	select {
	case <-changes:
		t.Fatal("invalid file must not be delivered")
	case <-time.After(300 * time.Millisecond):
	}
}

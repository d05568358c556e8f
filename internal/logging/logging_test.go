// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("HIDDEN")
	l.Info("CHAT_SEND", "turns", 2)
	assert.NotContains(t, buf.String(), "HIDDEN")
	assert.Contains(t, buf.String(), "CHAT_SEND")
	assert.Contains(t, buf.String(), "turns=2")

	buf.Reset()
	New(&buf, true).Debug("VISIBLE")
	assert.Contains(t, buf.String(), "VISIBLE")
}

func TestSetup_File(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), ".zamam")
	l, closeFn, err := Setup(Options{Dir: dir})
	require.NoError(t, err)
	l.Info("STARTUP", "view", "LANDING")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "STARTUP")
	assert.Same(t, l, Default())
}

func TestSetup_Writer(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	var buf bytes.Buffer
	_, closeFn, err := Setup(Options{Writer: &buf})
	require.NoError(t, err)
	defer closeFn()

	Default().Warn("PROVIDER_ERROR", "op", "chat")
	assert.Contains(t, buf.String(), "PROVIDER_ERROR")
}

func TestOr(t *testing.T) {
	d := Discard()
	assert.Same(t, d, Or(d))
	assert.Same(t, Default(), Or(nil))
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	before := Default()
	SetDefault(nil)
	assert.Same(t, before, Default())
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultOutputName)
	current := []byte("package p\n\nfunc A() {}\n")
	require.NoError(t, os.WriteFile(path, current, 0o644))

	t.Run("up to date", func(t *testing.T) {
		var out bytes.Buffer
		ok, err := checkOutput(path, current, &out)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, out.String())
	})

	t.Run("stale", func(t *testing.T) {
		var out bytes.Buffer
		ok, err := checkOutput(path, []byte("package p\n\nfunc B() {}\n"), &out)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, out.String(), "is out of date")
		assert.Contains(t, out.String(), "-func A() {}")
		assert.Contains(t, out.String(), "+func B() {}")
	})

	t.Run("missing", func(t *testing.T) {
		var out bytes.Buffer
		ok, err := checkOutput(filepath.Join(dir, "missing.go"), current, &out)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, out.String(), "+package p")
	})
}

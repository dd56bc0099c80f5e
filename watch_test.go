package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSourceEvent(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, DefaultOutputName)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write go file", fsnotify.Event{Name: filepath.Join(dir, "model.go"), Op: fsnotify.Write}, true},
		{"create go file", fsnotify.Event{Name: filepath.Join(dir, "model.go"), Op: fsnotify.Create}, true},
		{"remove go file", fsnotify.Event{Name: filepath.Join(dir, "model.go"), Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(dir, "model.go"), Op: fsnotify.Chmod}, false},
		{"generated output", fsnotify.Event{Name: output, Op: fsnotify.Write}, false},
		{"test file", fsnotify.Event{Name: filepath.Join(dir, "model_test.go"), Op: fsnotify.Write}, false},
		{"not go", fsnotify.Event{Name: filepath.Join(dir, "README.md"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSourceEvent(tt.event, output))
		})
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseOptions([]string{"-watch", dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var stdout, stderr bytes.Buffer
	// The initial run fails (no module in dir); watch keeps going until cancelled.
	assert.NoError(t, watch(ctx, opts, &stdout, &stderr))
}

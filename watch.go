package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch regenerates the package output once, then again after every burst of
// source changes, until ctx is cancelled. Generation errors are logged and do
// not stop the loop: a file that is being edited may not parse yet.
func watch(ctx context.Context, opts *Options, stdout, stderr io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", opts.Dir, err)
	}

	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return err
	}

	regenerate := func() {
		if _, err := run(ctx, opts, stdout, stderr); err != nil {
			log.Print(err)
		}
	}

	regenerate()
	_, _ = fmt.Fprintf(stdout, "Watching %s for changes, press Ctrl+C to stop\n", opts.Dir)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(event, output) {
				continue
			}
			if opts.Verbose {
				_, _ = fmt.Fprintf(stdout, "[buildergen] %s %s\n", event.Op, event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				timer.Reset(opts.Debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)

		case <-fire:
			fire = nil
			regenerate()
		}
	}
}

// isSourceEvent reports whether event touches a non-test Go file other than
// the generated output.
func isSourceEvent(event fsnotify.Event, output string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if !strings.HasSuffix(event.Name, ".go") || strings.HasSuffix(event.Name, "_test.go") {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return abs != output
}

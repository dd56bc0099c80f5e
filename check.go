package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// checkOutput compares want with the file at path. When they differ it writes
// a unified diff to w and reports false.
func checkOutput(path string, want []byte, w io.Writer) (bool, error) {
	have, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if bytes.Equal(have, want) {
		return true, nil
	}

	diff, err := unifiedDiff(path, have, want)
	if err != nil {
		return false, err
	}
	_, _ = fmt.Fprintf(w, "%s is out of date:\n%s", path, diff)
	return false, nil
}

func unifiedDiff(path string, have, want []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(have)),
		B:        difflib.SplitLines(string(want)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
}

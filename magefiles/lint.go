//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Lint mg.Namespace

// Go runs golangci-lint on the codebase
func (Lint) Go() error {
	fmt.Println("Running golangci-lint...")
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Format checks if code is properly formatted
func (Lint) Format() error {
	fmt.Println("Checking code formatting...")
	return sh.RunV("gofmt", "-l", "-s", ".")
}

// Generated fails when a checked-in builder_gen.go no longer matches its sources
func (Lint) Generated() error {
	fmt.Println("Checking generated builder methods...")
	for _, dir := range []string{"example"} {
		if err := sh.RunV("go", "run", ".", "-check", dir); err != nil {
			return fmt.Errorf("%s/builder_gen.go is stale, run 'mage gen:example': %w", dir, err)
		}
	}
	return nil
}

// All runs all linting checks
func (Lint) All() error {
	mg.Deps(Lint.Go, Lint.Format, Lint.Generated)
	return nil
}

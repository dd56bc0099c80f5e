//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Gen mg.Namespace

// Example regenerates the example builder methods
func (Gen) Example() error {
	fmt.Println("Regenerating example builder methods...")
	return sh.RunV("go", "run", ".", "-output=example/builder_gen.go", "example")
}

// Verify checks that the checked-in example output is up to date
func (Gen) Verify() error {
	fmt.Println("Verifying generated files are up to date...")
	if err := sh.RunV("go", "run", ".", "-check", "-output=example/builder_gen.go", "example"); err != nil {
		return fmt.Errorf("generated files are out of date, run 'mage gen:example': %w", err)
	}

	fmt.Println("Generated files are up to date!")
	return nil
}

// Watch regenerates the example whenever its sources change
func (Gen) Watch() error {
	return sh.RunV("go", "run", ".", "-watch", "-v", "-output=example/builder_gen.go", "example")
}

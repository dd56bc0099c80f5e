//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Test mg.Namespace

// Unit runs all unit tests
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Race runs all tests with the race detector, which covers concurrent record generation
func (Test) Race() error {
	fmt.Println("Running tests with the race detector...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage report
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// All runs all tests and checks
func (Test) All() error {
	mg.Deps(Test.Unit, Test.Race)
	return nil
}

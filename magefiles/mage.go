//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

// Default target runs the unit tests
var Default = Test.Unit

// CI runs the race-enabled tests, the linters and the generated output check
func CI() error {
	fmt.Println("Running CI checks...")
	mg.SerialDeps(Test.All, Lint.All)
	return nil
}

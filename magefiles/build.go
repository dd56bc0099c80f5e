//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Binary builds the buildergen binary
func (Build) Binary() error {
	fmt.Println("Building buildergen binary...")
	return sh.RunV("go", "build", "-o", "bin/buildergen", ".")
}

// Install installs buildergen to GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing buildergen...")
	return sh.RunV("go", "install", ".")
}

// Clean removes built artifacts
func (Build) Clean() error {
	fmt.Println("Cleaning build artifacts...")
	return sh.Rm("bin")
}

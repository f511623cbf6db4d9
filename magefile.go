//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "deutsch"

// Default target to run when none is specified
var Default = Build

// Build compiles the deutsch binary
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/deutsch")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/deutsch")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binary)
}

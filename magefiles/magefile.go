//go:build mage

// Package main contains Mage build targets for office-converter.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	guiName = "office-converter-gui"
	cliName = "office-converter"
	guiPkg  = "."
	cliPkg  = "./cmd/office-converter"
)

// Default target to run when none is specified
var Default = All

// All vets, tests and builds both binaries.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Build compiles the desktop app and the CLI into bin/.
func Build() error {
	mg.Deps(BuildCLI, BuildGUI)
	return nil
}

// BuildCLI compiles the headless CLI.
func BuildCLI() error {
	return goBuild(cliName, cliPkg)
}

// BuildGUI compiles the Fyne desktop app. Needs cgo and the GL headers.
func BuildGUI() error {
	return goBuild(guiName, guiPkg)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy syncs go.mod and go.sum with the imports.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

func goBuild(name, pkg string) error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, name)
	if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
		return fmt.Errorf("go build %s: %w", pkg, err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

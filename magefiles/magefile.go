//go:build mage

// Package main contains Mage build targets for stdmirror developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "stdmirror"
	contentDir = "content"
)

var binPath = filepath.Join(binDir, binName)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	if err := sh.RunV("go", "build", "-o", binPath, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Mirror downloads the full catalog into content/.
func Mirror() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "fetch", "--output_dir", contentDir)
}

// Index rebuilds content/lookup.json from the mirrored standards.
func Index() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "index", "--output_dir", contentDir)
}

// Refresh mirrors the catalog and rebuilds the index.
func Refresh() {
	mg.SerialDeps(Mirror, Index)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}

//go:build mage

// Magefile for go-envinspect
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "go-envinspect"
	mainPkg    = "./cmd/go-envinspect"
	cliPkg     = "github.com/mrz1836/go-envinspect/internal/cli"
)

// Default target when mage runs without arguments
var Default = Build //nolint:gochecknoglobals // mage convention

// Build compiles the binary into bin/ with version information
func Build() error {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}

	ldflags := fmt.Sprintf("-s -w -X %[1]s.version=%[2]s -X %[1]s.commit=%[3]s -X %[1]s.buildDate=%[4]s",
		cliPkg, version, commit, time.Now().UTC().Format(time.RFC3339))

	return sh.RunV("go", "build", "-trimpath", "-ldflags", ldflags,
		"-o", filepath.Join("bin", binaryName), mainPkg)
}

// Test runs the unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// TestQuick runs the tests in short mode, skipping the git integration test
func TestQuick() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Cover writes a coverage profile to coverage.out
func Cover() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "-covermode=atomic", "./...")
}

// Lint runs go vet and golangci-lint
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("go vet failed: %w", err)
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// All runs lint, tests and build in order
func All() {
	mg.SerialDeps(Lint, Test, Build)
}

// Clean removes build artifacts
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build compiles the ipa2ru binary into ./bin
func Build() error {
	fmt.Println("Building ipa2ru...")
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", filepath.Join("bin", "ipa2ru"), "./cmd/ipa2ru")
}

// Test runs the full test suite
func Test() error {
	fmt.Println("Running tests...")
	return sh.Run("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.Run("go", "vet", "./...")
}

// Install builds and installs ipa2ru into GOBIN
func Install() error {
	mg.Deps(Test)
	fmt.Println("Installing ipa2ru...")
	return sh.Run("go", "install", "./cmd/ipa2ru")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	return sh.Rm("bin")
}

//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and pulls index.html's <style> block into
// css/styles.css.
func Extract() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName))
}

// Inspect builds the CLI and prints where the <style> markers are.
func Inspect() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "inspect")
}

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs every test with the race detector; the image locks are exercised
// by the concurrent bind tests.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Writes a coverage profile to coverage.out.
func (Test) Cover() error {
	_, err := executeCmd("go", withArgs("test", "-coverprofile=coverage.out", "./engine/..."), withStream())
	return err
}

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Runs go vet over every package.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Tidies the module and builds the anvil binary.
func (Build) Binary() error {
	if err := goTidy(); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", "bin/anvil", "."), withStream())
	return err
}

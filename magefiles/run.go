//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Lists every registered format.
func (Run) Formats() error {
	fmt.Println("Listing formats...")
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}

// Describes a single format, e.g. mage run:format BC7_SRGB_BLOCK.
func (Run) Format(name string) error {
	_, err := executeCmd("go", withArgs("run", ".", name), withStream())
	return err
}

package core

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyBound           = errors.New("image memory already bound")
	ErrSwapchainImage         = errors.New("image is backed by a swapchain")
	ErrDeviceGroupUnsupported = errors.New("device group bindings are not supported by this binder")
	ErrDriver                 = errors.New("driver call failed")
	ErrDuplicateKey           = errors.New("duplicate table key")
	ErrUnclassified           = errors.New("format has no compatibility class")
	ErrMalformedEntry         = errors.New("malformed table entry")
)

// AssertionError is the panic value raised by Assert.
type AssertionError struct {
	Predicate string
}

func (e *AssertionError) Error() string {
	return "assertion failed: " + e.Predicate
}

// Assert aborts the current operation when cond is false. Contract
// violations are programming errors and are never returned to the caller.
func Assert(cond bool, predicate string, args ...interface{}) {
	if cond {
		return
	}
	getLogger().Helper()
	msg := fmt.Sprintf(predicate, args...)
	LogError("assertion failed: %s", msg)
	panic(&AssertionError{Predicate: msg})
}

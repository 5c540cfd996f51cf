// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"errors"

	"github.com/ezrec/stackasm/translate"
)

var f = translate.From

var (
	ErrSimulatorMissing = errors.New(f("no simulator command configured"))
	ErrResultsFormat    = errors.New(f("unknown results format"))
	ErrResultsType      = errors.New(f("unsupported results value"))
)

// ErrNoAssertions is a test program without any assertion.
type ErrNoAssertions string

func (err ErrNoAssertions) Error() string {
	return f("Error: %v has no assertions", string(err))
}

// ErrConfigKey is an unknown key in a configuration file.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown configuration key '%v'", string(err))
}

// ErrStep locates a failure within a test run.
type ErrStep struct {
	Step string
	Err  error
}

func (err *ErrStep) Error() string {
	return f("%v: %v", err.Step, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

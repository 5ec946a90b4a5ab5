package main

import (
	"errors"
	"io"

	"github.com/robostack/pystub/pkg/check"
	"github.com/robostack/pystub/pkg/output"
)

// Checker is implemented by all verification check types.
type Checker interface {
	Run() check.Result
}

// ErrVerifyFailed is returned when at least one verification check fails.
var ErrVerifyFailed = errors.New("verification failed")

// runChecks executes checks in order, printing each result, and returns the
// pass/fail tally.
func runChecks(w io.Writer, checks []Checker) (passed, failed int) {
	for _, c := range checks {
		result := c.Run()
		output.PrintResult(w, result)
		if result.OK() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

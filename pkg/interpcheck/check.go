// Package interpcheck verifies that an interpreter is reachable and satisfies
// a version constraint.
package interpcheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/robostack/pystub/pkg/check"
)

// versionRegex matches the first version number in `python --version` output,
// e.g. "Python 3.11.4" or "Python 3.8".
var versionRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Check verifies an interpreter's presence and version.
type Check struct {
	Interpreter string // interpreter path or bare name resolved via PATH
	Constraint  string // semver constraint, e.g. ">= 3.8"; empty means presence only
	Runner      Runner // injected for testing
}

// Run executes the interpreter check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("interp: %s", c.Interpreter),
	}

	runner := c.Runner
	if runner == nil {
		runner = &RealRunner{}
	}

	path, err := runner.LookPath(c.Interpreter)
	if err != nil {
		return result.Failf("not found: %v", err)
	}
	result.AddDetailf("path: %s", path)

	if c.Constraint == "" {
		result.Status = check.StatusOK
		return result
	}

	constraint, err := semver.NewConstraint(c.Constraint)
	if err != nil {
		return result.Failf("invalid version constraint %q: %v", c.Constraint, err)
	}

	stdout, stderr, err := runner.RunCommand(c.Interpreter, "--version")
	if err != nil {
		return result.Failf("version command failed: %v", err)
	}

	// Python 2 printed its version to stderr.
	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}

	version, err := extractVersion(output)
	if err != nil {
		return result.Failf("%v", err)
	}
	result.AddDetailf("version: %s", version)

	if !constraint.Check(version) {
		return result.Failf("version %s does not satisfy %q", version, c.Constraint)
	}

	result.Status = check.StatusOK
	return result
}

// extractVersion finds and parses the first version number in output.
func extractVersion(output string) (*semver.Version, error) {
	m := versionRegex.FindString(output)
	if m == "" {
		return nil, fmt.Errorf("no version found in output %q", output)
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("could not parse version %q: %v", m, err)
	}
	return v, nil
}

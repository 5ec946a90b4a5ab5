package builder

import (
	"bytes"
	"os/exec"
)

// Runner abstracts toolchain invocation for testability.
type Runner interface {
	RunCommand(name string, args []string, env []string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunCommand executes a command with the given environment and returns its output.
func (r *RealRunner) RunCommand(name string, args []string, env []string) (stdout, stderr string, err error) {
	cmd := exec.Command(name, args...) //nolint:gosec // intentional: invoking the go toolchain
	cmd.Env = env
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunCommandFunc func(name string, args []string, env []string) (string, string, error)
}

// RunCommand calls the mock function.
func (m *MockRunner) RunCommand(name string, args []string, env []string) (stdout, stderr string, err error) {
	return m.RunCommandFunc(name, args, env)
}

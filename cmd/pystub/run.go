//go:build windows

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/robostack/pystub/pkg/cmdline"
	"github.com/robostack/pystub/pkg/launch"
	"github.com/robostack/pystub/pkg/shebang"
	"github.com/robostack/pystub/pkg/sibling"
)

// banner is printed on every wrapper-local failure, after any
// component-level diagnostic. The wording is contractual.
const banner = "Failed to execute the Python script..."

// runLauncher is swapped out in tests.
var runLauncher = launch.Run

// run executes the whole pipeline once: self-path probe, sibling resolve,
// interpreter choice, command assembly, launch, wait, exit-code propagation.
// It returns the child's exit code, or 1 on any wrapper-local failure.
func run(args []string, stderr io.Writer) int {
	cmd, err := prepare(args, &shebang.RealFileSystem{})
	if err != nil {
		fmt.Fprintln(stderr, banner)
		return 1
	}

	code, err := runLauncher(cmd)
	if err != nil {
		var lerr *launch.Error
		if errors.As(err, &lerr) {
			fmt.Fprintln(stderr, lerr.Diagnostic())
		}
		fmt.Fprintln(stderr, banner)
		return 1
	}
	return int(code)
}

// prepare assembles the child command line without launching anything.
func prepare(args []string, fsys shebang.FileSystem) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("probe executable path: %w", err)
	}
	if exe == "" {
		return "", errors.New("probe executable path: empty result")
	}

	script, err := sibling.Resolve(exe, scriptName)
	if err != nil {
		return "", err
	}

	interpreter := shebang.ChooseInterpreter(fsys, script)
	return cmdline.Assemble(interpreter, script, args), nil
}

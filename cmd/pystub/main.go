//go:build windows

// pystub is a native launcher stub for a Python script living next to it
// on disk. The packaging step emits one stub per script so that shell
// integrations and PATH lookups treat scripted entry points like compiled
// ones. The stub takes no flags of its own; every argument is forwarded to
// the interpreter after the script path.
//
// The stub is meaningful only on Windows; elsewhere "running a script file
// directly" is already native via kernel shebang support, so the build
// refuses to produce the artifact.
package main

import "os"

// scriptName is the sibling script this stub launches. It is baked in per
// stub by the generator via:
//
//	go build -ldflags "-X main.scriptName=<name>.py"
var scriptName = "mover.py"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

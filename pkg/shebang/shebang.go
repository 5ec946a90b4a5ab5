// Package shebang reads a script's first line and picks the interpreter to run it.
package shebang

import (
	"bufio"
	"strings"
)

// Marker is the two-character sequence that introduces a shebang line.
const Marker = "#!"

// FallbackInterpreter is used when the script carries no usable shebang.
// The bare name is resolved by the host's executable search rules (PATH).
const FallbackInterpreter = "python.exe"

// shebang paths are trimmed of spaces and tabs only; other whitespace is kept.
const trimCutset = " \t"

// Parse extracts the interpreter path from a script's first line.
// ok is false when the line does not begin with the shebang marker.
// The returned path has runs of spaces and tabs removed from both ends
// and may be empty.
func Parse(line string) (path string, ok bool) {
	if !strings.HasPrefix(line, Marker) {
		return "", false
	}
	return strings.Trim(line[len(Marker):], trimCutset), true
}

// ChooseInterpreter picks the interpreter for the given script.
// The shebang path wins only when it is non-empty after trimming and names
// a file whose attributes can be queried; existence is the only validation.
// Every other case (unreadable script, empty file, no marker, dangling path)
// falls back to FallbackInterpreter.
//
// Only the first line is inspected. A shebang with embedded arguments such
// as `#!C:\foo\py.exe -3` is passed through verbatim and will later be
// quoted as a single token; that is a documented limitation, not a bug.
func ChooseInterpreter(fsys FileSystem, scriptPath string) string {
	f, err := fsys.Open(scriptPath)
	if err != nil {
		return FallbackInterpreter
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		// Empty or unreadable file.
		return FallbackInterpreter
	}

	path, ok := Parse(scanner.Text())
	if !ok || path == "" {
		return FallbackInterpreter
	}

	if _, err := fsys.Stat(path); err != nil {
		return FallbackInterpreter
	}
	return path
}

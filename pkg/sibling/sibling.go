// Package sibling resolves the script path that sits next to a stub executable.
package sibling

import (
	"errors"
	"strings"
)

// ErrNoSeparator is returned when the executable path contains no directory
// separator, so no sibling directory can be derived.
var ErrNoSeparator = errors.New("executable path has no directory separator")

// Resolve derives the sibling script path from the stub's own path.
// The stub and its script are always co-located by the packaging step,
// so this is a pure string operation: everything before the last `\` or `/`
// is the directory, and the script name is appended with a backslash.
func Resolve(exePath, scriptName string) (string, error) {
	i := strings.LastIndexAny(exePath, `\/`)
	if i < 0 {
		return "", ErrNoSeparator
	}
	return exePath[:i] + `\` + scriptName, nil
}

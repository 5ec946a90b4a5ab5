// Package launch creates the interpreter child process and propagates its exit code.
package launch

import "fmt"

// Error reports a failed attempt to create the child process.
type Error struct {
	Cmd      string // the assembled command line that was handed to the host
	Code     uint32 // host error code in decimal
	NotFound bool   // the host reported that the image file could not be found
}

func (e *Error) Error() string {
	return fmt.Sprintf("launch [%s]: host error %d", e.Cmd, e.Code)
}

// Diagnostic returns the user-facing message for this failure. The literal
// wording is contractual; tests assert on it.
func (e *Error) Diagnostic() string {
	if e.NotFound {
		return fmt.Sprintf("Error! Python executable in [%s] cannot be found.", e.Cmd)
	}
	return fmt.Sprintf("Error! CreateProcess for [%s] failed with error code: %d.", e.Cmd, e.Code)
}

// Package cmdline assembles the raw command line handed to the host's
// process-creation facility.
package cmdline

import "strings"

// Assemble builds the single command-line string for the child process:
// the quoted interpreter, one space, the quoted script, then each forwarded
// argument preceded by two spaces and wrapped in double quotes.
//
// The two-space separator before every forwarded argument and the absence of
// any escaping of embedded quotes or backslashes are contractual; downstream
// consumers inspect the constructed line. Callers that need escaping must
// pre-escape their arguments.
func Assemble(interpreter, script string, args []string) string {
	var b strings.Builder
	b.WriteString(quote(interpreter))
	b.WriteByte(' ')
	b.WriteString(quote(script))
	for _, a := range args {
		b.WriteString("  ")
		b.WriteString(quote(a))
	}
	return b.String()
}

// quote wraps a value in ASCII double quotes so embedded spaces survive the
// round trip through a single command-line string.
func quote(s string) string {
	return `"` + s + `"`
}

// Package output prints verification results with colored status markers.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/robostack/pystub/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result with colored status.
func PrintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "      %s\n", formatLabel(d))
	}
}

// PrintSummary writes a one-line tally after a batch of checks.
func PrintSummary(w io.Writer, passed, failed int) {
	if failed == 0 {
		fmt.Fprintf(w, "%s%d check(s) passed%s\n", green, passed, reset)
		return
	}
	fmt.Fprintf(w, "%s%d of %d check(s) failed%s\n", red, failed, passed+failed, reset)
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	i := strings.Index(detail, ": ")
	if i < 0 {
		return detail
	}
	return dim + detail[:i+1] + reset + detail[i+1:]
}

// pystubgen is the packaging-side companion of pystub: it cross-builds one
// launcher stub per script listed in a manifest and verifies packaged trees
// against the resulting lock file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "pystubgen",
	Short:         "Generate and verify Windows launcher stubs for Python scripts",
	Long:          "pystubgen builds one pystub .exe per script listed in wrappers.yaml and records script digests in wrappers.lock.json for later verification.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pystubgen: %v\n", err)
		os.Exit(1)
	}
}

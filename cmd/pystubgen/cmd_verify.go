package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robostack/pystub/pkg/digestcheck"
	"github.com/robostack/pystub/pkg/interpcheck"
	"github.com/robostack/pystub/pkg/lockfile"
	"github.com/robostack/pystub/pkg/manifest"
	"github.com/robostack/pystub/pkg/output"
	"github.com/robostack/pystub/pkg/scriptcheck"
)

var (
	verManifest      string
	verLockFile      string
	verNoStubs       bool
	verInterpreter   string
	verPythonVersion string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a packaged tree against the manifest and lock file",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verManifest, "manifest", manifest.DefaultFile, "wrapper manifest to read")
	verifyCmd.Flags().StringVar(&verLockFile, "lock", "", "lock file to check against (default: wrappers.lock.json next to the manifest)")
	verifyCmd.Flags().BoolVar(&verNoStubs, "no-stubs", false, "skip checking for built stub binaries")
	verifyCmd.Flags().StringVar(&verInterpreter, "python", "", "interpreter to probe on this host (default: skip)")
	verifyCmd.Flags().StringVar(&verPythonVersion, "python-version", "", "semver constraint for --python, e.g. '>= 3.8'")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(verManifest)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(verManifest)
	scripts, err := m.Expand(baseDir)
	if err != nil {
		return err
	}

	lockPath := verLockFile
	if lockPath == "" {
		lockPath = filepath.Join(baseDir, lockfile.DefaultFile)
	}
	outDir := filepath.Join(baseDir, m.OutDir)

	var checks []Checker
	for _, script := range scripts {
		stub := ""
		if !verNoStubs {
			base := filepath.Base(script)
			stub = filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".exe")
		}
		checks = append(checks,
			&scriptcheck.Check{Script: script, Stub: stub},
			&digestcheck.Check{Script: script, LockFile: lockPath},
		)
	}

	if verInterpreter != "" {
		checks = append(checks, &interpcheck.Check{
			Interpreter: verInterpreter,
			Constraint:  verPythonVersion,
		})
	}

	w := cmd.OutOrStdout()
	passed, failed := runChecks(w, checks)
	output.PrintSummary(w, passed, failed)

	if failed > 0 {
		return ErrVerifyFailed
	}
	return nil
}

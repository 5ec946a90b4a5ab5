// Package digestcheck verifies a packaged script against its lock file entry.
package digestcheck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robostack/pystub/pkg/check"
	"github.com/robostack/pystub/pkg/lockfile"
)

// FileReader abstracts lock file access for testability.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileReader implements FileReader using the real filesystem.
type RealFileReader struct{}

func (r *RealFileReader) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // intentional: reading the lock file
}

// Check verifies a script's digest against the recorded lock entry.
type Check struct {
	Script   string     // path to the script
	LockFile string     // path to wrappers.lock.json
	Reader   FileReader // injected for testing
}

// Run executes the digest check.
func (c *Check) Run() check.Result {
	name := filepath.Base(c.Script)
	result := check.Result{
		Name: fmt.Sprintf("digest: %s", name),
	}

	reader := c.Reader
	if reader == nil {
		reader = &RealFileReader{}
	}

	data, err := reader.ReadFile(c.LockFile)
	if err != nil {
		return result.Failf("failed to read lock file: %v", err)
	}

	want, ok := lockfile.LookupDigest(data, name)
	if !ok {
		return result.Failf("script %q not found in lock file", name)
	}

	got, err := lockfile.Digest(c.Script)
	if err != nil {
		return result.Failf("failed to digest script: %v", err)
	}

	if got != want {
		return result.Failf("digest mismatch\n       expected: %s\n       actual:   %s", want, got)
	}

	result.Status = check.StatusOK
	result.AddDetailf("digest: %s", got)
	return result
}

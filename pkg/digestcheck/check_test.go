package digestcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robostack/pystub/pkg/lockfile"
)

// mockReader is a test double for FileReader.
type mockReader struct {
	data []byte
	err  error
}

func (m *mockReader) ReadFile(string) ([]byte, error) {
	return m.data, m.err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mover.py")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lockDataFor(t *testing.T, script string) []byte {
	t.Helper()
	digest, err := lockfile.Digest(script)
	if err != nil {
		t.Fatal(err)
	}
	return []byte(`{"wrappers":[{"script":"mover.py","source":"x","stub":"y","digest":"` + digest + `"}]}`)
}

func TestRun_DigestMatches(t *testing.T) {
	script := writeScript(t, "print(1)\n")

	c := &Check{
		Script:   script,
		LockFile: "wrappers.lock.json",
		Reader:   &mockReader{data: lockDataFor(t, script)},
	}
	result := c.Run()

	if !result.OK() {
		t.Fatalf("Run() failed: %v", result.Details)
	}
	if result.Name != "digest: mover.py" {
		t.Errorf("Name = %q", result.Name)
	}
}

func TestRun_DigestMismatch(t *testing.T) {
	script := writeScript(t, "print(1)\n")
	data := lockDataFor(t, script)

	if err := os.WriteFile(script, []byte("print(2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := &Check{Script: script, LockFile: "l", Reader: &mockReader{data: data}}
	result := c.Run()

	if result.OK() {
		t.Fatal("Run() should fail on digest mismatch")
	}
	if !strings.Contains(result.Details[0], "digest mismatch") {
		t.Errorf("Details = %v", result.Details)
	}
}

func TestRun_ScriptNotInLock(t *testing.T) {
	script := writeScript(t, "x\n")

	c := &Check{
		Script:   script,
		LockFile: "l",
		Reader:   &mockReader{data: []byte(`{"wrappers":[]}`)},
	}
	result := c.Run()

	if result.OK() {
		t.Fatal("Run() should fail for script missing from lock")
	}
	if !strings.Contains(result.Details[0], "not found in lock file") {
		t.Errorf("Details = %v", result.Details)
	}
}

func TestRun_LockUnreadable(t *testing.T) {
	script := writeScript(t, "x\n")

	c := &Check{
		Script:   script,
		LockFile: "l",
		Reader:   &mockReader{err: errors.New("permission denied")},
	}
	result := c.Run()

	if result.OK() {
		t.Fatal("Run() should fail when lock file cannot be read")
	}
	if !strings.Contains(result.Details[0], "failed to read lock file") {
		t.Errorf("Details = %v", result.Details)
	}
}

func TestRun_ScriptUnreadable(t *testing.T) {
	gone := filepath.Join(t.TempDir(), "mover.py")

	c := &Check{
		Script:   gone,
		LockFile: "l",
		Reader:   &mockReader{data: []byte(`{"wrappers":[{"script":"mover.py","digest":"ab"}]}`)},
	}
	result := c.Run()

	if result.OK() {
		t.Fatal("Run() should fail when script cannot be digested")
	}
}

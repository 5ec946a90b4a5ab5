package lockfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)

	lock := &Lock{Wrappers: []Entry{
		{Script: "mover.py", Source: "scripts/mover.py", Stub: "bin/mover.exe", Digest: "abc123"},
		{Script: "turner.py", Source: "scripts/turner.py", Stub: "bin/turner.exe", Digest: "def456"},
	}}

	if err := Write(path, lock); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	digest, ok := LookupDigest(data, "turner.py")
	if !ok {
		t.Fatal("LookupDigest: turner.py not found")
	}
	if digest != "def456" {
		t.Errorf("digest = %q, want %q", digest, "def456")
	}

	if _, ok := LookupDigest(data, "gone.py"); ok {
		t.Error("LookupDigest should miss unknown scripts")
	}
}

func TestLookupDigest_InvalidJSON(t *testing.T) {
	if _, ok := LookupDigest([]byte("{not json"), "mover.py"); ok {
		t.Error("LookupDigest should reject invalid JSON")
	}
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.py")
	b := filepath.Join(dir, "b.py")
	c := filepath.Join(dir, "c.py")

	if err := os.WriteFile(a, []byte("print(1)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("print(1)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c, []byte("print(2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	da, err := Digest(a)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	db, err := Digest(b)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	dc, err := Digest(c)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	if len(da) != 64 || strings.ToLower(da) != da {
		t.Errorf("digest %q should be 64 lowercase hex chars", da)
	}
	if da != db {
		t.Errorf("identical content produced different digests: %q vs %q", da, db)
	}
	if da == dc {
		t.Error("different content produced identical digests")
	}
}

func TestDigest_MissingFile(t *testing.T) {
	if _, err := Digest(filepath.Join(t.TempDir(), "gone.py")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

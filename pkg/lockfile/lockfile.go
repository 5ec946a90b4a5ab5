// Package lockfile records what was baked into each generated stub.
package lockfile

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"github.com/zeebo/blake3"
)

// DefaultFile is the lock file name used when none is given.
const DefaultFile = "wrappers.lock.json"

// Entry describes one generated stub.
type Entry struct {
	Script string `json:"script"` // script name baked into the stub, e.g. "mover.py"
	Source string `json:"source"` // script path at generation time
	Stub   string `json:"stub"`   // produced stub binary path
	Digest string `json:"digest"` // BLAKE3 hex digest of the script content
}

// Lock is the on-disk lock file shape.
type Lock struct {
	Wrappers []Entry `json:"wrappers"`
}

// Write serializes the lock to path.
func Write(path string, l *Lock) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding lock file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing lock file: %w", err)
	}
	return nil
}

// Digest computes the BLAKE3 hex digest of a file's content.
func Digest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // intentional: digesting a manifest-listed script
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// LookupDigest finds the recorded digest for a script name in raw lock data.
func LookupDigest(data []byte, script string) (string, bool) {
	if !gjson.ValidBytes(data) {
		return "", false
	}
	r := gjson.GetBytes(data, fmt.Sprintf(`wrappers.#(script=="%s").digest`, script))
	if !r.Exists() {
		return "", false
	}
	return r.String(), true
}

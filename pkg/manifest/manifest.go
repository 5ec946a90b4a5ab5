// Package manifest loads the wrapper manifest that drives stub generation.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the manifest name looked up when none is given.
const DefaultFile = "wrappers.yaml"

// Manifest describes which scripts get a stub and where the stubs land.
type Manifest struct {
	// Scripts lists script paths or doublestar glob patterns,
	// relative to the manifest's directory.
	Scripts []string `yaml:"scripts"`
	// OutDir is where stub binaries are written, relative to the
	// manifest's directory. Defaults to "bin".
	OutDir string `yaml:"out_dir"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the manifest
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Scripts) == 0 {
		return nil, fmt.Errorf("manifest lists no scripts")
	}
	for i, s := range m.Scripts {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("manifest script entry %d is empty", i)
		}
	}
	if m.OutDir == "" {
		m.OutDir = "bin"
	}

	return &m, nil
}

// Expand resolves the manifest's script entries against baseDir.
// Glob patterns are expanded with doublestar; literal paths must exist.
// The result is deduplicated and sorted.
func (m *Manifest) Expand(baseDir string) ([]string, error) {
	seen := map[string]bool{}
	var scripts []string

	for _, entry := range m.Scripts {
		pattern := filepath.Join(baseDir, filepath.FromSlash(entry))

		if !isPattern(entry) {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("script %q: %w", entry, err)
			}
			if !seen[pattern] {
				seen[pattern] = true
				scripts = append(scripts, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", entry, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no scripts", entry)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				scripts = append(scripts, match)
			}
		}
	}

	sort.Strings(scripts)
	return scripts, nil
}

// isPattern reports whether a manifest entry contains glob metacharacters.
func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

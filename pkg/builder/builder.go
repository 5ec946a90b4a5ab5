// Package builder cross-compiles one launcher stub per script.
package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StubPackage is the import path of the stub command this builder compiles.
const StubPackage = "github.com/robostack/pystub/cmd/pystub"

// Builder produces stub binaries by driving `go build`.
type Builder struct {
	GoBin   string // go tool binary, default "go"
	OutDir  string // directory for stub binaries
	Package string // stub package import path, default StubPackage
	Runner  Runner // injected for testing
}

// Build cross-compiles the stub for one script, baking the script's base
// name in via -ldflags, and returns the stub binary path. The stub is always
// a Windows artifact, so GOOS=windows is forced regardless of the host.
func (b *Builder) Build(scriptPath string) (string, error) {
	base := filepath.Base(scriptPath)
	if strings.ContainsAny(base, " \t") {
		// -ldflags splits on whitespace, so such a name cannot be baked in.
		return "", fmt.Errorf("script name %q contains whitespace", base)
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stub := filepath.Join(b.OutDir, stem+".exe")

	goBin := b.GoBin
	if goBin == "" {
		goBin = "go"
	}
	pkg := b.Package
	if pkg == "" {
		pkg = StubPackage
	}
	runner := b.Runner
	if runner == nil {
		runner = &RealRunner{}
	}

	if err := os.MkdirAll(b.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	args := []string{
		"build",
		"-ldflags", fmt.Sprintf("-X main.scriptName=%s", base),
		"-o", stub,
		pkg,
	}
	env := append(os.Environ(), "GOOS=windows")

	if _, stderr, err := runner.RunCommand(goBin, args, env); err != nil {
		if stderr != "" {
			return "", fmt.Errorf("go build for %s: %v\n%s", base, err, strings.TrimSpace(stderr))
		}
		return "", fmt.Errorf("go build for %s: %w", base, err)
	}

	return stub, nil
}

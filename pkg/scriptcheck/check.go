// Package scriptcheck verifies a packaged script and reports how its stub
// would resolve the interpreter.
package scriptcheck

import (
	"fmt"
	"path/filepath"

	"github.com/robostack/pystub/pkg/check"
	"github.com/robostack/pystub/pkg/shebang"
)

// Check verifies that a script is in place and resolvable.
type Check struct {
	Script string             // path to the script
	Stub   string             // path to the stub binary; skipped when empty
	FS     shebang.FileSystem // injected for testing
}

// Run executes the script check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("script: %s", filepath.Base(c.Script)),
	}

	fsys := c.FS
	if fsys == nil {
		fsys = &shebang.RealFileSystem{}
	}

	if _, err := fsys.Stat(c.Script); err != nil {
		return result.Failf("script not found: %v", err)
	}
	result.AddDetailf("path: %s", c.Script)

	if c.Stub != "" {
		if _, err := fsys.Stat(c.Stub); err != nil {
			return result.Failf("stub not found: %v", err)
		}
		result.AddDetailf("stub: %s", c.Stub)
	}

	interpreter := shebang.ChooseInterpreter(fsys, c.Script)
	if interpreter == shebang.FallbackInterpreter {
		result.AddDetailf("interpreter: %s (PATH fallback)", interpreter)
	} else {
		result.AddDetailf("interpreter: %s (shebang)", interpreter)
	}

	result.Status = check.StatusOK
	return result
}

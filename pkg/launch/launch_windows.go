//go:build windows

package launch

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Run creates a child process from the assembled command line, blocks until
// it terminates, and returns its exit code.
//
// The application name is left nil so the host resolves the interpreter from
// the command line itself. The child inherits the parent's environment and
// working directory; handles are not inherited and no creation flags are set.
// Both process and thread handles are released on every path.
func Run(cmdLine string) (uint32, error) {
	// CreateProcess may modify the command-line buffer, so it must be mutable.
	cmd, err := windows.UTF16FromString(cmdLine)
	if err != nil {
		return 0, fmt.Errorf("encode command line: %w", err)
	}

	var si windows.StartupInfo
	si.Cb = uint32(unsafe.Sizeof(si))
	var pi windows.ProcessInformation

	if err := windows.CreateProcess(
		nil,     // application name: resolve from the command line
		&cmd[0], // command line
		nil,     // process security attributes
		nil,     // thread security attributes
		false,   // no handle inheritance
		0,       // no creation flags
		nil,     // inherit parent's environment
		nil,     // inherit parent's working directory
		&si,
		&pi,
	); err != nil {
		return 0, newError(cmdLine, err)
	}
	defer func() { _ = windows.CloseHandle(pi.Thread) }()
	defer func() { _ = windows.CloseHandle(pi.Process) }()

	// Unbounded wait: if the child hangs, so does the wrapper.
	if _, err := windows.WaitForSingleObject(pi.Process, windows.INFINITE); err != nil {
		return 0, fmt.Errorf("wait for child: %w", err)
	}

	var code uint32
	if err := windows.GetExitCodeProcess(pi.Process, &code); err != nil {
		return 0, fmt.Errorf("query child exit code: %w", err)
	}
	return code, nil
}

func newError(cmdLine string, err error) *Error {
	e := &Error{Cmd: cmdLine}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		e.Code = uint32(errno)
		e.NotFound = errno == windows.ERROR_FILE_NOT_FOUND
	}
	return e
}

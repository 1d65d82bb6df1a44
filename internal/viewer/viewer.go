// Package viewer opens a file in the desktop's default application.
//
// Opening is advisory: callers report the Result and carry on. Nothing here
// waits for the launched program.
package viewer

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrViewerUnavailable indicates no launcher exists on this platform or PATH
var ErrViewerUnavailable = errors.New("no default viewer available")

// Result is the outcome of an open attempt
type Result int

const (
	// ResultOpened means the viewer process was started
	ResultOpened Result = iota
	// ResultUnavailable means there is no launcher to start
	ResultUnavailable
	// ResultFailed means the launcher exists but could not be started
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultOpened:
		return "opened"
	case ResultUnavailable:
		return "unavailable"
	default:
		return "failed"
	}
}

// Opener launches the platform file opener
type Opener struct {
	GOOS     string
	LookPath func(file string) (string, error)
	Start    func(name string, args ...string) error
}

// NewOpener creates an opener for the running platform
func NewOpener() *Opener {
	return &Opener{
		GOOS:     runtime.GOOS,
		LookPath: exec.LookPath,
		Start:    startDetached,
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Command returns the launcher and arguments used to open path
func Command(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		// The empty argument is the window title expected by start
		return "cmd", []string{"/c", "start", "", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported platform %s", ErrViewerUnavailable, goos)
	}
}

// Open starts the default viewer for path
func (o *Opener) Open(path string) (Result, error) {
	name, args, err := Command(o.GOOS, path)
	if err != nil {
		return ResultUnavailable, err
	}

	if _, err := o.LookPath(name); err != nil {
		return ResultUnavailable, fmt.Errorf("%w: %s not found", ErrViewerUnavailable, name)
	}

	if err := o.Start(name, args...); err != nil {
		return ResultFailed, fmt.Errorf("failed to start %s: %w", name, err)
	}
	return ResultOpened, nil
}

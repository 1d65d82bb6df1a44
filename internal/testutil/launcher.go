package testutil

import (
	"errors"
	"strings"
)

// MockLauncher records process launches instead of running them
type MockLauncher struct {
	Installed map[string]bool
	StartErr  error
	Calls     [][]string
}

// NewMockLauncher creates a launcher that reports the given programs as installed
func NewMockLauncher(installed ...string) *MockLauncher {
	ml := &MockLauncher{Installed: make(map[string]bool)}
	for _, name := range installed {
		ml.Installed[name] = true
	}
	return ml
}

// LookPath resolves name if it was registered as installed
func (ml *MockLauncher) LookPath(name string) (string, error) {
	if !ml.Installed[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}

// Start records the command line and returns StartErr
func (ml *MockLauncher) Start(name string, args ...string) error {
	ml.Calls = append(ml.Calls, append([]string{name}, args...))
	return ml.StartErr
}

// LastCall returns the most recent command line joined by spaces
func (ml *MockLauncher) LastCall() string {
	if len(ml.Calls) == 0 {
		return ""
	}
	return strings.Join(ml.Calls[len(ml.Calls)-1], " ")
}

// CallCount returns the number of launches
func (ml *MockLauncher) CallCount() int {
	return len(ml.Calls)
}

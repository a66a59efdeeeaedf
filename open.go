package mdreport

import (
	"fmt"
	"runtime"
	"strings"
)

// OpenFile asks the platform to open path with its default associated
// application. Best effort: a failure is reported, never retried.
func OpenFile(path string) error {
	return openFileWith(&ExecRunner{}, runtime.GOOS, path)
}

func openFileWith(runner CommandRunner, goos, path string) error {
	name, args := openCommand(goos, path)
	if _, stderr, err := runner.Run(name, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpenFailed, strings.TrimSpace(stderr), err)
	}
	return nil
}

// openCommand maps the platform to its "open with associated
// application" dispatcher.
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

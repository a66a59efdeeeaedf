package mdreport

import (
	"bytes"
	"os/exec"
)

// CommandRunner abstracts external tool invocation (the PDF converter,
// the platform open dispatcher) so tests can fake subprocesses.
type CommandRunner interface {
	Run(name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner runs commands synchronously through os/exec with both
// output streams captured. Stderr is kept whole so converter
// diagnostics survive verbatim into errors.
type ExecRunner struct{}

func (r *ExecRunner) Run(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- tool name and arguments are fixed by callers

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

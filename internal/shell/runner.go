// Package shell runs state commands through the host's command interpreter.
//
// The model layer depends on the Runner interface only, so tests can observe
// transitions without spawning processes.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// ErrSpawn indicates the subprocess could not be started.
var ErrSpawn = errors.New("failed to start command")

// Runner executes a shell command, blocking until it exits.
type Runner interface {
	// Run executes command through the host shell. A non-zero exit status
	// is not an error; only a failure to start the subprocess is.
	Run(command string) error
}

// RealRunner implements Runner using the host's command interpreter:
// cmd /C on Windows, sh -c everywhere else.
type RealRunner struct {
	// Stdout and Stderr receive the subprocess output streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRealRunner creates a RealRunner that forwards subprocess output to the
// current process's own streams.
func NewRealRunner() *RealRunner {
	return &RealRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes command synchronously and forwards its output.
func (r *RealRunner) Run(command string) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", command)
	} else {
		cmd = exec.Command("sh", "-c", command)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The command ran; its exit status is the user's business.
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	return nil
}

package oscommand

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/ctxlog"
)

// DefaultShell returns the interpreter used when none is configured. Extra
// arguments are quoted for POSIX sh, so Windows also needs an sh on PATH.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "sh"
	}
	return "/bin/sh"
}

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
// The child shares the runner's standard streams unless they are overridden.
type OSCommandExecutor struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSCommandExecutor creates an executor for shell, falling back to DefaultShell when it is empty.
// Nil streams default to the runner's own.
func NewOSCommandExecutor(shell string, stdin io.Reader, stdout, stderr io.Writer) ports.CommandExecutor {
	if shell == "" {
		shell = DefaultShell()
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &OSCommandExecutor{
		Shell:  shell,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Execute hands commandLine to the shell and waits for it without a timeout.
// A child killed by a signal is reported as 128 plus the signal number.
func (e *OSCommandExecutor) Execute(ctx context.Context, commandLine string) (int, error) {
	cmd := exec.Command(e.Shell, "-c", commandLine)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	ctxlog.FromContext(ctx).Debug("executing alias", "shell", e.Shell, "command", commandLine)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 1, &alias.ExecutionError{Shell: e.Shell, Err: err}
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}

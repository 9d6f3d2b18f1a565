package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tkk2112/pyproject-aliases/internal/handlers/ui"
)

// ExitError asks Execute to end the process with Code. Message, when set, is
// printed to stderr first.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// failure wraps err as an ExitError with code 1.
func failure(err error) *ExitError {
	return &ExitError{Code: 1, Message: err.Error(), Err: err}
}

// Execute runs cmd and returns the process exit code. It is the only place
// where errors are turned into diagnostics and exit codes.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	stderr := cmd.ErrOrStderr()
	errorColor := ui.ForWriter(stderr, ui.ErrorColor)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, errorColor(exitErr.Message))
		}
		return exitErr.Code
	}

	// Flag parsing errors from cobra.
	fmt.Fprintln(stderr, errorColor("Error: "+err.Error()))
	fmt.Fprintln(stderr, ui.ForWriter(stderr, ui.DetailColor)(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
	return 1
}

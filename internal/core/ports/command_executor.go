package ports

import "context"

// CommandExecutor runs a composed command line through a shell interpreter.
type CommandExecutor interface {
	/*
	   Execute blocks until the shell exits and returns its exit code. A non-zero
	   code is not an error; err is only set (as an *alias.ExecutionError) when
	   the shell could not be started.
	*/
	Execute(ctx context.Context, commandLine string) (exitCode int, err error)
}

package alias

import "fmt"

// ConfigNotFoundError is returned when the configuration file does not exist,
// either at an explicit path or anywhere above the working directory.
type ConfigNotFoundError struct {
	Path string
	// SearchedFrom is set when the file was looked up rather than given.
	SearchedFrom string
	Err          error
}

func (e *ConfigNotFoundError) Error() string {
	if e.SearchedFrom != "" {
		return fmt.Sprintf("Could not locate a %s file (searched upward from %s).", e.Path, e.SearchedFrom)
	}
	return fmt.Sprintf("Config file not found: %s", e.Path)
}

func (e *ConfigNotFoundError) Unwrap() error { return e.Err }

// ConfigSyntaxError is returned when the configuration file is not valid TOML.
// Line is zero when the parser did not report a position.
type ConfigSyntaxError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigSyntaxError) Error() string {
	return fmt.Sprintf("Error parsing config file %s: %v", e.Path, e.Err)
}

func (e *ConfigSyntaxError) Unwrap() error { return e.Err }

// ConfigReadError covers every other I/O failure while reading the file.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("Error reading config file %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// AliasNotFoundError is returned when the requested name is not in tool.aliases.
type AliasNotFoundError struct {
	Name string
}

func (e *AliasNotFoundError) Error() string {
	return fmt.Sprintf("alias '%s' not found in config", e.Name)
}

// ExecutionError is returned when the shell itself could not be started.
// A command that runs and exits non-zero is not an ExecutionError.
type ExecutionError struct {
	Shell string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("Error executing alias: starting shell '%s': %v", e.Shell, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

/*
Package alias defines the core domain entities of the alias runner: a single
alias, the ordered table read from the project configuration, and the
request built from the command line.
*/
package alias

/*
Alias is a named shortcut for a shell command template. The template is
opaque to this package and may contain arbitrary shell syntax.
*/
type Alias struct {
	Name    string
	Command string
}

/*
Request is a single invocation of the runner. Name is empty when the caller
only wants to see the available aliases.
*/
type Request struct {
	Name      string
	ExtraArgs []string

	// ConfigPath is used as-is when set; otherwise the configuration file
	// is searched for from the working directory upwards.
	ConfigPath string
}

// HasAlias reports whether the request names an alias to run.
func (r Request) HasAlias() bool {
	return r.Name != ""
}

/*
Package command builds the final shell command string for an alias.
*/
package command

import (
	"strings"

	"github.com/alessio/shellescape"
)

/*
Composed is the complete command handed to the shell: the alias template
followed by the caller's extra arguments, each quoted as a single literal
word.
*/
type Composed struct {
	Template  string
	ExtraArgs []string
}

// String renders the command line.
func (c Composed) String() string {
	return Compose(c.Template, c.ExtraArgs)
}

/*
Compose appends extraArgs to template. The template is left untouched; every
extra argument is escaped on its own so the shell sees it as exactly one word,
whatever quotes, whitespace or metacharacters it contains. With no extra
arguments the template is returned unchanged, without a trailing space.
*/
func Compose(template string, extraArgs []string) string {
	if len(extraArgs) == 0 {
		return template
	}
	quoted := make([]string, len(extraArgs))
	for i, arg := range extraArgs {
		quoted[i] = shellescape.Quote(arg)
	}
	return template + " " + strings.Join(quoted, " ")
}

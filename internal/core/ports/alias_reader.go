package ports

import (
	"context"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
)

/*
AliasReader reads the tool.aliases table of a configuration file. Every call
reads and parses the file again; nothing is cached between calls.
*/
type AliasReader interface {
	// FetchAll returns every alias in document order. A missing tool or
	// tool.aliases table yields an empty Table, not an error.
	FetchAll(ctx context.Context, configPath string) (alias.Table, error)

	// FetchOne returns the template for name, or an *alias.AliasNotFoundError.
	FetchOne(ctx context.Context, configPath, name string) (string, error)
}

package ports

import (
	"context"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
)

// AliasRunService resolves and runs aliases defined in a project configuration file.
type AliasRunService interface {
	// ListAliases returns every alias defined in the configuration file the
	// request points at.
	ListAliases(ctx context.Context, req alias.Request) (alias.Table, error)

	// RunAlias composes the requested alias with the request's extra arguments,
	// runs it and returns the child's exit code.
	RunAlias(ctx context.Context, req alias.Request) (int, error)
}

package aliasrunner

import (
	"context"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/command"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/ctxlog"
)

// workingDir asks the locator to start from the process working directory.
const workingDir = ""

type service struct {
	locator  ports.ConfigLocator
	reader   ports.AliasReader
	executor ports.CommandExecutor
}

// NewService creates the alias run service.
// It panics if any dependency is nil.
func NewService(locator ports.ConfigLocator, reader ports.AliasReader, executor ports.CommandExecutor) ports.AliasRunService {
	if locator == nil {
		panic("locator cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &service{locator: locator, reader: reader, executor: executor}
}

// ListAliases locates the configuration file and returns all of its aliases.
func (s *service) ListAliases(ctx context.Context, req alias.Request) (alias.Table, error) {
	configPath, err := s.locator.Locate(ctx, req.ConfigPath, workingDir)
	if err != nil {
		return alias.Table{}, err
	}
	return s.reader.FetchAll(ctx, configPath)
}

// RunAlias resolves req.Name, appends the extra arguments and runs the result.
// Errors are returned as-is so the caller can tell the failure kinds apart.
func (s *service) RunAlias(ctx context.Context, req alias.Request) (int, error) {
	configPath, err := s.locator.Locate(ctx, req.ConfigPath, workingDir)
	if err != nil {
		return 1, err
	}

	template, err := s.reader.FetchOne(ctx, configPath, req.Name)
	if err != nil {
		return 1, err
	}

	composed := command.Composed{Template: template, ExtraArgs: req.ExtraArgs}
	exitCode, err := s.executor.Execute(ctx, composed.String())
	if err != nil {
		return 1, err
	}

	ctxlog.FromContext(ctx).Debug("alias finished", "alias", req.Name, "exit_code", exitCode)
	return exitCode, nil
}

package pyproject

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/ctxlog"
)

// DefaultFileName is the configuration file searched for when no path is given.
const DefaultFileName = "pyproject.toml"

// Locator finds DefaultFileName in a directory or one of its ancestors.
type Locator struct {
	fs       afero.Fs
	fileName string
}

// NewLocator creates a Locator searching fs for DefaultFileName.
func NewLocator(fs afero.Fs) ports.ConfigLocator {
	return &Locator{fs: fs, fileName: DefaultFileName}
}

// Locate implements the ports.ConfigLocator interface.
// An empty startDir means the process working directory with symlinks resolved.
func (l *Locator) Locate(ctx context.Context, explicitPath, startDir string) (string, error) {
	logger := ctxlog.FromContext(ctx)
	if explicitPath != "" {
		logger.Debug("using explicit config path", "path", explicitPath)
		return explicitPath, nil
	}

	dir, err := resolveStartDir(startDir)
	if err != nil {
		return "", err
	}

	for current := dir; ; {
		candidate := filepath.Join(current, l.fileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			logger.Debug("located config file", "path", candidate)
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", &alias.ConfigNotFoundError{Path: l.fileName, SearchedFrom: dir}
}

// resolveStartDir makes startDir absolute. The working directory is resolved
// through symlinks so the walk follows the physical parent chain.
func resolveStartDir(startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		if resolved, err := filepath.EvalSymlinks(wd); err == nil {
			wd = resolved
		}
		return wd, nil
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", startDir, err)
	}
	return abs, nil
}

package testutil

import (
	"context"
	"errors"

	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, commandLine string) (int, error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(ctx context.Context, commandLine string) (int, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, commandLine)
	}
	return 1, errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)

package testutil

import (
	"context"

	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
)

// MockConfigLocator is a mock implementation of ports.ConfigLocator.
type MockConfigLocator struct {
	LocateFunc func(ctx context.Context, explicitPath, startDir string) (string, error)
}

// Locate mocks the Locate method. Without LocateFunc it echoes explicitPath.
func (m *MockConfigLocator) Locate(ctx context.Context, explicitPath, startDir string) (string, error) {
	if m.LocateFunc != nil {
		return m.LocateFunc(ctx, explicitPath, startDir)
	}
	return explicitPath, nil
}

var _ ports.ConfigLocator = (*MockConfigLocator)(nil)

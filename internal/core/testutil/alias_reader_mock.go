package testutil

import (
	"context"
	"errors"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
)

// MockAliasReader is a mock implementation of ports.AliasReader for testing.
type MockAliasReader struct {
	FetchAllFunc func(ctx context.Context, configPath string) (alias.Table, error)
	FetchOneFunc func(ctx context.Context, configPath, name string) (string, error)
}

func (m *MockAliasReader) FetchAll(ctx context.Context, configPath string) (alias.Table, error) {
	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx, configPath)
	}
	return alias.Table{}, errors.New("MockAliasReader: FetchAllFunc not implemented")
}

func (m *MockAliasReader) FetchOne(ctx context.Context, configPath, name string) (string, error) {
	if m.FetchOneFunc != nil {
		return m.FetchOneFunc(ctx, configPath, name)
	}
	return "", errors.New("MockAliasReader: FetchOneFunc not implemented")
}

var _ ports.AliasReader = (*MockAliasReader)(nil)

package testutil

import (
	"context"
	"errors"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
)

// MockAliasRunService is a mock implementation of ports.AliasRunService.
type MockAliasRunService struct {
	ListAliasesFunc func(ctx context.Context, req alias.Request) (alias.Table, error)
	RunAliasFunc    func(ctx context.Context, req alias.Request) (int, error)
}

func (m *MockAliasRunService) ListAliases(ctx context.Context, req alias.Request) (alias.Table, error) {
	if m.ListAliasesFunc != nil {
		return m.ListAliasesFunc(ctx, req)
	}
	return alias.Table{}, errors.New("MockAliasRunService: ListAliasesFunc not implemented")
}

func (m *MockAliasRunService) RunAlias(ctx context.Context, req alias.Request) (int, error) {
	if m.RunAliasFunc != nil {
		return m.RunAliasFunc(ctx, req)
	}
	return 1, errors.New("MockAliasRunService: RunAliasFunc not implemented")
}

var _ ports.AliasRunService = (*MockAliasRunService)(nil)

package aliasrunner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/testutil"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if all dependencies are set", func(t *testing.T) {
		svc := NewService(&testutil.MockConfigLocator{}, &testutil.MockAliasReader{}, &testutil.MockCommandExecutor{})
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	tests := []struct {
		name  string
		build func()
	}{
		{name: "nil locator", build: func() { NewService(nil, &testutil.MockAliasReader{}, &testutil.MockCommandExecutor{}) }},
		{name: "nil reader", build: func() { NewService(&testutil.MockConfigLocator{}, nil, &testutil.MockCommandExecutor{}) }},
		{name: "nil executor", build: func() { NewService(&testutil.MockConfigLocator{}, &testutil.MockAliasReader{}, nil) }},
	}
	for _, tt := range tests {
		t.Run("should panic with "+tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewService did not panic with %s", tt.name)
				}
			}()
			tt.build()
		})
	}
}

func TestService_ListAliases(t *testing.T) {
	table := alias.NewTable(alias.Alias{Name: "build", Command: "make"}, alias.Alias{Name: "test", Command: "pytest"})
	locateErr := &alias.ConfigNotFoundError{Path: "pyproject.toml", SearchedFrom: "/work"}
	readErr := &alias.ConfigSyntaxError{Path: "/work/pyproject.toml", Err: errors.New("bad toml")}

	tests := []struct {
		name      string
		req       alias.Request
		locator   *testutil.MockConfigLocator
		reader    *testutil.MockAliasReader
		want      []alias.Alias
		wantErr   error
		wantPaths []string
	}{
		{
			name: "success - searched config",
			req:  alias.Request{},
			locator: &testutil.MockConfigLocator{LocateFunc: func(_ context.Context, explicitPath, startDir string) (string, error) {
				if explicitPath != "" || startDir != "" {
					t.Errorf("Locate() got (%q, %q), want working directory search", explicitPath, startDir)
				}
				return "/work/pyproject.toml", nil
			}},
			want:      table.Aliases(),
			wantPaths: []string{"/work/pyproject.toml"},
		},
		{
			name:      "success - explicit config",
			req:       alias.Request{ConfigPath: "custom.toml"},
			locator:   &testutil.MockConfigLocator{},
			want:      table.Aliases(),
			wantPaths: []string{"custom.toml"},
		},
		{
			name: "failure - config not located",
			req:  alias.Request{},
			locator: &testutil.MockConfigLocator{LocateFunc: func(context.Context, string, string) (string, error) {
				return "", locateErr
			}},
			wantErr: locateErr,
		},
		{
			name:    "failure - reader error",
			req:     alias.Request{ConfigPath: "/work/pyproject.toml"},
			locator: &testutil.MockConfigLocator{},
			reader: &testutil.MockAliasReader{FetchAllFunc: func(context.Context, string) (alias.Table, error) {
				return alias.Table{}, readErr
			}},
			wantErr: readErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPaths []string
			reader := tt.reader
			if reader == nil {
				reader = &testutil.MockAliasReader{FetchAllFunc: func(_ context.Context, configPath string) (alias.Table, error) {
					gotPaths = append(gotPaths, configPath)
					return table, nil
				}}
			}
			svc := NewService(tt.locator, reader, &testutil.MockCommandExecutor{})

			got, err := svc.ListAliases(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ListAliases() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListAliases() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got.Aliases(), tt.want) {
				t.Errorf("ListAliases() = %v, want %v", got.Aliases(), tt.want)
			}
			if !reflect.DeepEqual(gotPaths, tt.wantPaths) {
				t.Errorf("FetchAll() called with %v, want %v", gotPaths, tt.wantPaths)
			}
		})
	}
}

func TestService_RunAlias(t *testing.T) {
	notFound := &alias.AliasNotFoundError{Name: "deploy"}
	execErr := &alias.ExecutionError{Shell: "/bin/sh", Err: errors.New("no such file")}
	configErr := &alias.ConfigNotFoundError{Path: "missing.toml"}

	tests := []struct {
		name        string
		req         alias.Request
		locateErr   error
		template    string
		fetchErr    error
		exitCode    int
		execErr     error
		wantCommand string
		wantCode    int
		wantErr     error
	}{
		{
			name:        "success - no extra args",
			req:         alias.Request{Name: "test-alias", ConfigPath: "pyproject.toml"},
			template:    "echo 'Hello, World!'",
			wantCommand: "echo 'Hello, World!'",
			wantCode:    0,
		},
		{
			name:        "success - extra args are escaped",
			req:         alias.Request{Name: "test-alias", ExtraArgs: []string{"arg1", "arg with space"}},
			template:    "echo",
			wantCommand: "echo arg1 'arg with space'",
			wantCode:    0,
		},
		{
			name:        "child exit code is propagated",
			req:         alias.Request{Name: "test-alias"},
			template:    "invalid_command",
			exitCode:    127,
			wantCommand: "invalid_command",
			wantCode:    127,
		},
		{
			name:      "failure - config not found",
			req:       alias.Request{Name: "test-alias", ConfigPath: "missing.toml"},
			locateErr: configErr,
			wantCode:  1,
			wantErr:   configErr,
		},
		{
			name:     "failure - alias not found",
			req:      alias.Request{Name: "deploy"},
			fetchErr: notFound,
			wantCode: 1,
			wantErr:  notFound,
		},
		{
			name:        "failure - shell cannot start",
			req:         alias.Request{Name: "test-alias"},
			template:    "some_command",
			execErr:     execErr,
			wantCommand: "some_command",
			wantCode:    1,
			wantErr:     execErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCommands []string
			locator := &testutil.MockConfigLocator{LocateFunc: func(_ context.Context, explicitPath, _ string) (string, error) {
				if tt.locateErr != nil {
					return "", tt.locateErr
				}
				return "/work/pyproject.toml", nil
			}}
			reader := &testutil.MockAliasReader{FetchOneFunc: func(_ context.Context, configPath, name string) (string, error) {
				if configPath != "/work/pyproject.toml" {
					t.Errorf("FetchOne() configPath = %q, want /work/pyproject.toml", configPath)
				}
				if name != tt.req.Name {
					t.Errorf("FetchOne() name = %q, want %q", name, tt.req.Name)
				}
				return tt.template, tt.fetchErr
			}}
			executor := &testutil.MockCommandExecutor{ExecuteFunc: func(_ context.Context, commandLine string) (int, error) {
				gotCommands = append(gotCommands, commandLine)
				return tt.exitCode, tt.execErr
			}}
			svc := NewService(locator, reader, executor)

			gotCode, err := svc.RunAlias(context.Background(), tt.req)

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RunAlias() error = %v, want %v", err, tt.wantErr)
			}
			if gotCode != tt.wantCode {
				t.Errorf("RunAlias() code = %d, want %d", gotCode, tt.wantCode)
			}
			var wantCommands []string
			if tt.wantCommand != "" {
				wantCommands = []string{tt.wantCommand}
			}
			if !reflect.DeepEqual(gotCommands, wantCommands) {
				t.Errorf("Execute() called with %q, want %q", gotCommands, wantCommands)
			}
		})
	}
}

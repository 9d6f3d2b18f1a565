/*
Package pyproject reads alias definitions from the [tool.aliases] table of a
pyproject.toml file.
*/
package pyproject

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/core/ports"
	"github.com/tkk2112/pyproject-aliases/internal/ctxlog"
)

const (
	toolTable    = "tool"
	aliasesTable = "aliases"
)

// Reader implements ports.AliasReader on top of an afero filesystem.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a Reader that opens configuration files on fs.
func NewReader(fs afero.Fs) ports.AliasReader {
	return &Reader{fs: fs}
}

// FetchAll implements the ports.AliasReader interface.
func (r *Reader) FetchAll(ctx context.Context, configPath string) (alias.Table, error) {
	return r.readTable(ctx, configPath)
}

// FetchOne implements the ports.AliasReader interface.
func (r *Reader) FetchOne(ctx context.Context, configPath, name string) (string, error) {
	table, err := r.readTable(ctx, configPath)
	if err != nil {
		return "", err
	}
	command, ok := table.Lookup(name)
	if !ok {
		return "", &alias.AliasNotFoundError{Name: name}
	}
	return command, nil
}

func (r *Reader) readTable(ctx context.Context, configPath string) (alias.Table, error) {
	data, err := afero.ReadFile(r.fs, configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return alias.Table{}, &alias.ConfigNotFoundError{Path: configPath, Err: err}
		}
		return alias.Table{}, &alias.ConfigReadError{Path: configPath, Err: err}
	}

	var doc map[string]any
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		syntaxErr := &alias.ConfigSyntaxError{Path: configPath, Err: err}
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			syntaxErr.Line = parseErr.Position.Line
		}
		return alias.Table{}, syntaxErr
	}

	table := aliasTable(doc, meta.Keys())
	ctxlog.FromContext(ctx).Debug("read aliases", "path", configPath, "count", table.Len())
	return table, nil
}

// aliasTable extracts tool.aliases from a decoded document, ordered as the
// keys appear in the file.
func aliasTable(doc map[string]any, keys []toml.Key) alias.Table {
	var table alias.Table

	tool, ok := doc[toolTable].(map[string]any)
	if !ok {
		return table
	}
	raw, ok := tool[aliasesTable].(map[string]any)
	if !ok {
		return table
	}

	for _, key := range keys {
		if len(key) != 3 || key[0] != toolTable || key[1] != aliasesTable {
			continue
		}
		if value, ok := raw[key[2]]; ok {
			table.Set(key[2], commandString(value))
		}
	}

	// Keys the metadata did not report are appended in name order.
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		if _, seen := table.Lookup(name); !seen {
			table.Set(name, commandString(raw[name]))
		}
	}
	return table
}

func commandString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

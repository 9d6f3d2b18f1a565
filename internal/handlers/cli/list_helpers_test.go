package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"gopkg.in/yaml.v3"
)

func sampleTable() alias.Table {
	return alias.NewTable(
		alias.Alias{Name: "test", Command: "pytest"},
		alias.Alias{Name: "build", Command: "make"},
		alias.Alias{Name: "greet", Command: "echo hello"},
	)
}

func TestRenderAliases_Golden(t *testing.T) {
	disableColor(t)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))

	for _, format := range []string{OutputText, OutputYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderAliases(&buf, sampleTable(), format))
			g.Assert(t, "list_"+format, buf.Bytes())
		})
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAliases(&buf, sampleTable(), OutputTable))

	out := buf.String()
	assert.Contains(t, out, "ALIAS NAME")
	assert.Contains(t, out, "COMMAND")
	test, build, greet := strings.Index(out, "pytest"), strings.Index(out, "make"), strings.Index(out, "echo hello")
	assert.True(t, test < build && build < greet, "rows out of document order:\n%s", out)
}

func TestRenderYAML_KeepsOrderAndQuoting(t *testing.T) {
	table := alias.NewTable(
		alias.Alias{Name: "zeta", Command: "echo 'Hello, World!'"},
		alias.Alias{Name: "alpha", Command: "42"},
		alias.Alias{Name: "mid", Command: "a: b # c"},
	)

	var buf bytes.Buffer
	require.NoError(t, renderYAML(&buf, table))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Content, 1)
	mapping := doc.Content[0]

	var got []alias.Alias
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		got = append(got, alias.Alias{Name: mapping.Content[i].Value, Command: mapping.Content[i+1].Value})
	}
	assert.Equal(t, table.Aliases(), got)
	assert.Equal(t, "!!str", mapping.Content[3].Tag)
}

func TestRenderAliases_UnknownFormatFallsBackToText(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	require.NoError(t, renderAliases(&buf, sampleTable(), ""))
	assert.True(t, strings.HasPrefix(buf.String(), chooseAliasHeader+"\n"))
}

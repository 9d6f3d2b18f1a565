package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/tkk2112/pyproject-aliases/internal/core/domain/alias"
	"github.com/tkk2112/pyproject-aliases/internal/handlers/ui"
	"gopkg.in/yaml.v3"
)

const (
	chooseAliasHeader = "You must choose one of the available aliases:"
	noAliasesMessage  = "No aliases defined in the configuration file."
)

// renderAliases writes table to w in the given format, keeping document order.
func renderAliases(w io.Writer, table alias.Table, format string) error {
	switch format {
	case OutputTable:
		renderTable(w, table)
		return nil
	case OutputYAML:
		return renderYAML(w, table)
	default:
		return renderText(w, table)
	}
}

func renderText(w io.Writer, table alias.Table) error {
	if _, err := fmt.Fprintln(w, ui.HeaderColor(chooseAliasHeader)); err != nil {
		return err
	}
	for _, a := range table.Aliases() {
		if _, err := fmt.Fprintf(w, "  %s (%s)\n", ui.AliasNameColor(a.Name), ui.AliasCmdColor(a.Command)); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, table alias.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Alias Name", "Command"})
	tw.SetBorder(true)
	tw.SetAutoWrapText(false)
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range table.Aliases() {
		tw.Append([]string{a.Name, a.Command})
	}
	tw.Render()
}

// renderYAML builds the mapping node by hand; encoding a Go map would sort the keys.
func renderYAML(w io.Writer, table alias.Table) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range table.Aliases() {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Command},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return fmt.Errorf("failed to encode aliases as YAML: %w", err)
	}
	return enc.Close()
}

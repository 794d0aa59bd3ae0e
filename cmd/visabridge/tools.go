package main

import (
	"github.com/spf13/cobra"

	"github.com/10aParikh/visabridge/internal/clifmt"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List available tools",
		RunE:  runToolsCmd,
	}
}

func runToolsCmd(cmd *cobra.Command, _ []string) error {
	registry := registryFromCatalog()

	specs := registry.All()
	rows := make([]clifmt.NameDetailRow, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, clifmt.NameDetailRow{
			Name:   spec.Name,
			Detail: spec.Description,
		})
	}

	clifmt.PrintNameDetailTable(cmd.OutOrStdout(), clifmt.NameDetailTableOptions{
		Title:          "Tools",
		Rows:           rows,
		EmptyText:      "No tools are registered.",
		NameHeader:     "NAME",
		DetailHeader:   "DESCRIPTION",
		MinDetailWidth: 36,
	})
	return nil
}

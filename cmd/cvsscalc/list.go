package main

import (
	"fmt"
	"io"

	"github.com/dshills/cvsscalc/internal/preset"
	"github.com/dshills/cvsscalc/internal/render"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show the metrics quick reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), render.Guide())
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in preset scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd.OutOrStdout())
		},
	}
}

func runPresets(out io.Writer) error {
	names, err := preset.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		p, err := preset.LoadBuiltin(name)
		if err != nil {
			return exitError(exitInput, "%v", err)
		}
		sel, err := p.Selection()
		if err != nil {
			return exitError(exitInput, "%v", err)
		}
		fmt.Fprintf(out, "%-14s %s\n%-14s %s\n", name, p.Title, "", sel.Vector())
	}
	return nil
}

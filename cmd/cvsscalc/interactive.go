package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/cvsscalc/internal/preset"
	"github.com/dshills/cvsscalc/internal/prompt"
	"github.com/dshills/cvsscalc/internal/render"
	"github.com/dshills/cvsscalc/internal/report"
	"github.com/spf13/cobra"
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Menu-driven calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runInteractive(in io.Reader, out io.Writer) error {
	c := prompt.NewCollector(in, out)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "🛡️  CVSS v3.1 Risk Calculator")
	fmt.Fprintln(out, "   Common Vulnerability Scoring System Calculator")
	fmt.Fprintln(out, rule)

	for {
		fmt.Fprintln(out, "\n🎯 CVSS v3.1 Calculator Options:")
		fmt.Fprintln(out, "1. Calculate new vulnerability score")
		fmt.Fprintln(out, "2. Load MySQL scenario (from guide)")
		fmt.Fprintln(out, "3. Show metrics guide")
		fmt.Fprintln(out, "4. Exit")

		choice, err := c.ReadLine("\nSelect option (1-4): ")
		if errors.Is(err, prompt.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			fmt.Fprintln(out, "\n📝 Enter vulnerability details:")
			sel, err := c.Selection()
			if errors.Is(err, prompt.ErrClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			rep, err := report.Build(version, report.Input{Source: report.SourceInteractive}, sel)
			if err != nil {
				fmt.Fprintf(out, "❌ Error: %v\n", err)
				continue
			}
			fmt.Fprint(out, render.Text(rep))

		case "2":
			fmt.Fprintln(out, "\n🗄️  Loading MySQL Scenario...")
			p, err := preset.LoadBuiltin("mysql")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p.Description)
			sel, err := p.Selection()
			if err != nil {
				return err
			}
			rep, err := report.Build(version, report.Input{Source: report.SourcePreset, Preset: p.Name}, sel)
			if err != nil {
				return scoringError(err)
			}
			fmt.Fprint(out, render.Text(rep))

		case "3":
			fmt.Fprint(out, render.Guide())

		case "4":
			fmt.Fprintln(out, "\n👋 Thank you for using CVSS Calculator!")
			fmt.Fprintln(out, "🛡️  Remember: Stay secure, prioritize risks, and keep learning!")
			return nil

		default:
			fmt.Fprintln(out, "❌ Invalid option. Please try again.")
		}
	}
}

const rule = "============================================================"

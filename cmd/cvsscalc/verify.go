package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/cvsscalc/internal/report"
	"github.com/dshills/cvsscalc/internal/schema"
	"github.com/dshills/cvsscalc/internal/sign"
	"github.com/spf13/cobra"
)

type verifyFlags struct {
	signature string
	pubkey    string
}

func newVerifyCmd() *cobra.Command {
	f := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify <report.json>",
		Short: "Recompute a saved JSON report and check its signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.signature, "signature", "", "Detached OpenPGP signature over the report")
	flags.StringVar(&f.pubkey, "pubkey", "", "OpenPGP public key used to check --signature")

	return cmd
}

func runVerify(stdout, stderr io.Writer, path string, f *verifyFlags) error {
	if (f.signature == "") != (f.pubkey == "") {
		return exitError(exitInput, "--signature and --pubkey must be used together")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return exitError(exitInput, "failed to read report: %v", err)
	}

	if f.signature != "" {
		sig, err := os.ReadFile(f.signature)
		if err != nil {
			return exitError(exitInput, "failed to read signature: %v", err)
		}
		fp, err := sign.Verify(f.pubkey, data, sig)
		if err != nil {
			return exitError(exitVerify, "%v", err)
		}
		fmt.Fprintf(stdout, "Good signature from %s\n", fp)
	}

	var rep report.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return exitError(exitInput, "failed to parse report as JSON: %v", err)
	}

	if errs := schema.Validate(&rep); len(errs) > 0 {
		fmt.Fprintln(stderr, "Report verification errors:")
		for _, e := range errs {
			fmt.Fprintf(stderr, "  %s\n", e)
		}
		return exitError(exitVerify, "report %s failed verification", path)
	}

	fmt.Fprintf(stdout, "OK %s %.1f %s\n", rep.Result.Vector, rep.Result.BaseScore, rep.Result.Severity)
	return nil
}

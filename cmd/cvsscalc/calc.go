package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dshills/cvsscalc/internal/cvss"
	"github.com/dshills/cvsscalc/internal/preset"
	"github.com/dshills/cvsscalc/internal/render"
	"github.com/dshills/cvsscalc/internal/report"
	"github.com/dshills/cvsscalc/internal/sign"
	"github.com/spf13/cobra"
)

type calcFlags struct {
	metrics  map[string]*string
	vector   string
	preset   string
	file     string
	format   string
	out      string
	failOn   string
	signKey  string
	signOut  string
	verbose  bool
	metricOn func(key string) bool
}

// metricFlagNames maps vector keys to their flag names.
var metricFlagNames = map[string]string{
	cvss.KeyAttackVector:       "av",
	cvss.KeyAttackComplexity:   "ac",
	cvss.KeyPrivilegesRequired: "pr",
	cvss.KeyUserInteraction:    "ui",
	cvss.KeyScope:              "scope",
	cvss.KeyConfidentiality:    "c",
	cvss.KeyIntegrity:          "i",
	cvss.KeyAvailability:       "a",
}

func newCalcCmd() *cobra.Command {
	f := &calcFlags{metrics: make(map[string]*string)}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Score a metric selection given by flags, vector, preset or file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.metricOn = func(key string) bool {
				return cmd.Flags().Changed(metricFlagNames[key])
			}
			return runCalc(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	for _, m := range cvss.Metrics() {
		var v string
		f.metrics[m.Key] = &v
		flags.StringVar(&v, metricFlagNames[m.Key], "", fmt.Sprintf("%s (%s)", m.Name, optionList(m)))
	}
	flags.StringVar(&f.vector, "vector", "", "CVSS:3.1 vector string")
	flags.StringVar(&f.preset, "preset", "", "Built-in preset name (see 'cvsscalc presets')")
	flags.StringVar(&f.file, "file", "", "YAML or JSON selection file")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, json or yaml")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if severity is at or above this rating")
	flags.StringVar(&f.signKey, "sign-key", "", "Armored OpenPGP private key used to sign the output")
	flags.StringVar(&f.signOut, "sign-out", "", "Signature output path (default: <out>.asc)")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func optionList(m cvss.Metric) string {
	s := ""
	for i, o := range m.Options {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s/%s", o.Abbrev, o.Value)
	}
	return s
}

func runCalc(stdout io.Writer, f *calcFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	// 1. Validate flags that do not depend on the selection
	var threshold cvss.Severity
	if f.failOn != "" {
		s, err := cvss.ParseSeverity(f.failOn)
		if err != nil {
			return exitError(exitInput, "invalid --fail-on: %v", err)
		}
		threshold = s
	}
	switch f.format {
	case "text", "md", "json", "yaml":
	default:
		return exitError(exitInput, "unknown format: %s", f.format)
	}
	if f.signKey != "" && f.out == "" && f.signOut == "" {
		return exitError(exitInput, "--sign-key requires --out or --sign-out")
	}

	// 2. Collect the selection
	sel, in, err := collectSelection(f, verbose)
	if err != nil {
		return err
	}

	// 3. Score
	verbose("Scoring %s", sel.Vector())
	rep, err := report.Build(version, in, sel)
	if err != nil {
		return scoringError(err)
	}
	verbose("Base score %.1f (%s)", rep.Result.BaseScore, rep.Result.Severity)

	// 4. Render
	output, err := renderReport(rep, f.format)
	if err != nil {
		return err
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	// 5. Sign
	if f.signKey != "" {
		sigPath := f.signOut
		if sigPath == "" {
			sigPath = f.out + ".asc"
		}
		verbose("Signing output with %s", f.signKey)
		signer, err := sign.LoadSigner(f.signKey)
		if err != nil {
			return exitError(exitInput, "failed to load signing key: %v", err)
		}
		sig, err := signer.Sign([]byte(output))
		if err != nil {
			return fmt.Errorf("failed to sign output: %w", err)
		}
		if err := os.WriteFile(sigPath, sig, 0644); err != nil {
			return fmt.Errorf("failed to write signature: %w", err)
		}
		verbose("Wrote signature %s (key %s)", sigPath, signer.Fingerprint())
	}

	// 6. Exit code based on --fail-on
	if threshold != "" && severityMeetsThreshold(rep.Result.Severity, threshold) {
		return exitError(exitThreshold, "severity %s meets fail threshold %s", rep.Result.Severity, threshold)
	}
	return nil
}

// collectSelection builds the selection from exactly one input source.
func collectSelection(f *calcFlags, verbose func(string, ...any)) (cvss.Selection, report.Input, error) {
	var sel cvss.Selection

	flagged := false
	for _, m := range cvss.Metrics() {
		if f.metricOn != nil && f.metricOn(m.Key) {
			flagged = true
		}
	}
	sources := 0
	for _, used := range []bool{flagged, f.vector != "", f.preset != "", f.file != ""} {
		if used {
			sources++
		}
	}
	switch {
	case sources == 0:
		return sel, report.Input{}, exitError(exitInput, "no input: use metric flags, --vector, --preset or --file")
	case sources > 1:
		return sel, report.Input{}, exitError(exitInput, "metric flags, --vector, --preset and --file are mutually exclusive")
	}

	switch {
	case f.vector != "":
		verbose("Parsing vector %s", f.vector)
		s, err := cvss.ParseVector(f.vector)
		if err != nil {
			return sel, report.Input{}, exitError(exitInput, "invalid vector: %v", err)
		}
		return s, report.Input{Source: report.SourceVector}, nil

	case f.preset != "":
		verbose("Loading preset: %s", f.preset)
		p, err := preset.LoadBuiltin(f.preset)
		if err != nil {
			return sel, report.Input{}, exitError(exitInput, "failed to load preset: %v", err)
		}
		s, err := p.Selection()
		if err != nil {
			return sel, report.Input{}, exitError(exitInput, "invalid preset: %v", err)
		}
		return s, report.Input{Source: report.SourcePreset, Preset: p.Name}, nil

	case f.file != "":
		verbose("Loading selection file: %s", f.file)
		pf, err := preset.LoadFile(f.file)
		if err != nil {
			return sel, report.Input{}, exitError(exitInput, "failed to load selection file: %v", err)
		}
		s, err := pf.Preset.Selection()
		if err != nil {
			return sel, report.Input{}, exitError(exitInput, "invalid selection file: %v", err)
		}
		return s, report.Input{Source: report.SourceFile, File: filepath.Base(pf.FilePath), FileHash: pf.Hash}, nil
	}

	for _, m := range cvss.Metrics() {
		if !f.metricOn(m.Key) {
			continue
		}
		if err := sel.Set(m.Key, *f.metrics[m.Key]); err != nil {
			return sel, report.Input{}, exitError(exitInput, "--%s: %v", metricFlagNames[m.Key], err)
		}
	}
	return sel, report.Input{Source: report.SourceFlags}, nil
}

func scoringError(err error) error {
	switch {
	case errors.Is(err, cvss.ErrInvalidSelection):
		return exitError(exitInput, "%v", err)
	case errors.Is(err, cvss.ErrInvariant):
		return exitError(exitInternal, "internal error: %v", err)
	}
	return err
}

func renderReport(r *report.Report, format string) (string, error) {
	switch format {
	case "json":
		return render.JSON(r)
	case "yaml":
		return render.YAML(r)
	case "md":
		return render.Markdown(r), nil
	case "text":
		return render.Text(r), nil
	}
	return "", exitError(exitInput, "unknown format: %s", format)
}

func severityMeetsThreshold(s, threshold cvss.Severity) bool {
	if !s.Valid() || !threshold.Valid() {
		return false
	}
	return s.Rank() >= threshold.Rank()
}

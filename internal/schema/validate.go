// Package schema checks that a stored report is internally consistent.
package schema

import (
	"errors"
	"fmt"

	"github.com/dshills/cvsscalc/internal/cvss"
	"github.com/dshills/cvsscalc/internal/preset"
	"github.com/dshills/cvsscalc/internal/report"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural validity and recomputes its result
// from the stored metrics. Every stored value that differs is reported.
func Validate(r *report.Report) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if !r.Input.Source.Valid() {
		errs = append(errs, ValidationError{"input.source", fmt.Sprintf("invalid: %q", r.Input.Source)})
	}
	if r.Input.Source == report.SourceFile {
		if r.Input.File == "" {
			errs = append(errs, ValidationError{"input.file", "required for file input"})
		}
		if r.Input.FileHash == "" {
			errs = append(errs, ValidationError{"input.file_hash", "required for file input"})
		}
	}
	if r.Input.Source == report.SourcePreset {
		if r.Input.Preset == "" {
			errs = append(errs, ValidationError{"input.preset", "required for preset input"})
		} else if _, err := preset.LoadBuiltin(r.Input.Preset); err != nil {
			errs = append(errs, ValidationError{"input.preset", fmt.Sprintf("unknown preset %q", r.Input.Preset)})
		}
	}

	want, err := cvss.Calculate(r.Metrics)
	if err != nil {
		var se *cvss.SelectionError
		if errors.As(err, &se) {
			return append(errs, ValidationError{"metrics." + se.Field, err.Error()})
		}
		return append(errs, ValidationError{"metrics", err.Error()})
	}

	got := r.Result
	if got.Vector != want.Vector {
		errs = append(errs, ValidationError{"result.vector_string", fmt.Sprintf("expected %s, got %s", want.Vector, got.Vector)})
	}
	if got.Exploitability != want.Exploitability {
		errs = append(errs, ValidationError{"result.exploitability", fmt.Sprintf("expected %.2f, got %v", want.Exploitability, got.Exploitability)})
	}
	if got.Impact != want.Impact {
		errs = append(errs, ValidationError{"result.impact", fmt.Sprintf("expected %.2f, got %v", want.Impact, got.Impact)})
	}
	if got.BaseScore != want.BaseScore {
		errs = append(errs, ValidationError{"result.base_score", fmt.Sprintf("expected %.1f, got %v", want.BaseScore, got.BaseScore)})
	}
	if got.Severity != want.Severity {
		errs = append(errs, ValidationError{"result.severity", fmt.Sprintf("expected %s, got %q", want.Severity, got.Severity)})
	}
	if p := report.PriorityFor(want.Severity); r.Priority != p {
		errs = append(errs, ValidationError{"priority", fmt.Sprintf("expected %s, got %q", p, r.Priority)})
	}

	return errs
}

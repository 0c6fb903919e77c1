package schema

import (
	"testing"

	"github.com/dshills/cvsscalc/internal/cvss"
	"github.com/dshills/cvsscalc/internal/report"
)

func validReport(t *testing.T) *report.Report {
	t.Helper()
	sel, err := cvss.ParseVector("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H")
	if err != nil {
		t.Fatal(err)
	}
	r, err := report.Build("1.0", report.Input{Source: report.SourceVector}, sel)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func hasPath(errs []ValidationError, path string) bool {
	for _, e := range errs {
		if e.Path == path {
			return true
		}
	}
	return false
}

func TestValidateValid(t *testing.T) {
	for _, e := range Validate(validReport(t)) {
		t.Errorf("unexpected error: %s", e)
	}
}

func TestValidateMissingTool(t *testing.T) {
	r := validReport(t)
	r.Tool = ""
	if !hasPath(Validate(r), "tool") {
		t.Error("expected error for missing tool")
	}
}

func TestValidateMissingVersion(t *testing.T) {
	r := validReport(t)
	r.Version = ""
	if !hasPath(Validate(r), "version") {
		t.Error("expected error for missing version")
	}
}

func TestValidateInputSource(t *testing.T) {
	r := validReport(t)
	r.Input.Source = "CARRIER_PIGEON"
	if !hasPath(Validate(r), "input.source") {
		t.Error("expected error for invalid source")
	}

	r = validReport(t)
	r.Input = report.Input{Source: report.SourceFile, File: "x.yaml"}
	if !hasPath(Validate(r), "input.file_hash") {
		t.Error("expected error for file input without hash")
	}

	r = validReport(t)
	r.Input = report.Input{Source: report.SourceFile, FileHash: "abc123"}
	if !hasPath(Validate(r), "input.file") {
		t.Error("expected error for file input without path")
	}

	r = validReport(t)
	r.Input = report.Input{Source: report.SourcePreset}
	if !hasPath(Validate(r), "input.preset") {
		t.Error("expected error for preset input without name")
	}

	r = validReport(t)
	r.Input = report.Input{Source: report.SourcePreset, Preset: "no-such-preset"}
	if !hasPath(Validate(r), "input.preset") {
		t.Error("expected error for unknown preset")
	}

	r = validReport(t)
	r.Input = report.Input{Source: report.SourcePreset, Preset: "mysql"}
	if hasPath(Validate(r), "input.preset") {
		t.Error("unexpected error for built-in preset")
	}
}

func TestValidateTamperedResult(t *testing.T) {
	tests := []struct {
		path   string
		tamper func(r *report.Report)
	}{
		{"result.base_score", func(r *report.Report) { r.Result.BaseScore = 9.9 }},
		{"result.exploitability", func(r *report.Report) { r.Result.Exploitability = 3.8 }},
		{"result.impact", func(r *report.Report) { r.Result.Impact = 6.0 }},
		{"result.severity", func(r *report.Report) { r.Result.Severity = cvss.SeverityHigh }},
		{"result.vector_string", func(r *report.Report) { r.Result.Vector = "CVSS:3.1/AV:L/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H" }},
		{"priority", func(r *report.Report) { r.Priority = report.PriorityWeeks }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := validReport(t)
			tt.tamper(r)
			errs := Validate(r)
			if !hasPath(errs, tt.path) {
				t.Errorf("expected error at %s, got %v", tt.path, errs)
			}
		})
	}
}

func TestValidateChangedMetricsDetected(t *testing.T) {
	r := validReport(t)
	r.Metrics.AttackVector = cvss.AttackVectorPhysical
	errs := Validate(r)
	if !hasPath(errs, "result.exploitability") || !hasPath(errs, "result.vector_string") {
		t.Errorf("expected exploitability and vector mismatch, got %v", errs)
	}
}

func TestValidateInvalidMetrics(t *testing.T) {
	r := validReport(t)
	r.Metrics.Integrity = ""
	if !hasPath(Validate(r), "metrics.Integrity") {
		t.Error("expected error for missing integrity")
	}

	r = validReport(t)
	r.Metrics.Scope = "Sideways"
	if !hasPath(Validate(r), "metrics.Scope") {
		t.Error("expected error for unknown scope")
	}
}

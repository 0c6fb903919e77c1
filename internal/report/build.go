package report

import (
	"fmt"

	"github.com/dshills/cvsscalc/internal/cvss"
)

// Tool is the name recorded in every report.
const Tool = "cvsscalc"

// PriorityFor maps a severity rating to its remediation priority.
func PriorityFor(s cvss.Severity) Priority {
	switch s {
	case cvss.SeverityCritical:
		return PriorityImmediate
	case cvss.SeverityHigh:
		return PriorityDays
	case cvss.SeverityMedium:
		return PriorityWeeks
	case cvss.SeverityLow:
		return PriorityNextCycle
	default:
		return PriorityNone
	}
}

// Build scores sel and wraps the result with its provenance.
func Build(version string, in Input, sel cvss.Selection) (*Report, error) {
	res, err := cvss.Calculate(sel)
	if err != nil {
		return nil, fmt.Errorf("report.Build: %w", err)
	}
	return &Report{
		Tool:     Tool,
		Version:  version,
		Input:    in,
		Metrics:  sel,
		Result:   res,
		Priority: PriorityFor(res.Severity),
	}, nil
}

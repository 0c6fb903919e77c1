// Package cvss implements the CVSS v3.1 base score: sub-scores, severity
// rating and vector string encoding.
package cvss

import "fmt"

// Result is the outcome of scoring one Selection.
type Result struct {
	Exploitability float64  `json:"exploitability" yaml:"exploitability"`
	Impact         float64  `json:"impact" yaml:"impact"`
	BaseScore      float64  `json:"base_score" yaml:"base_score"`
	Severity       Severity `json:"severity" yaml:"severity"`
	Vector         string   `json:"vector_string" yaml:"vector_string"`
}

// Calculate scores sel. Nothing is computed unless every metric is set to a
// member of its domain; either a complete Result or an error is returned.
func Calculate(sel Selection) (Result, error) {
	if err := sel.Validate(); err != nil {
		return Result{}, err
	}

	exploitability := Exploitability(sel.AttackVector, sel.AttackComplexity,
		sel.PrivilegesRequired, sel.UserInteraction, sel.Scope)
	impact := Impact(sel.Scope, sel.Confidentiality, sel.Integrity, sel.Availability)
	base := BaseScore(exploitability, impact, sel.Scope)
	if base < 0 || base > maxScore {
		return Result{}, fmt.Errorf("%w: base score %v outside [0, %v]", ErrInvariant, base, maxScore)
	}

	severity, err := Classify(base)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Exploitability: exploitability,
		Impact:         impact,
		BaseScore:      base,
		Severity:       severity,
		Vector:         sel.Vector(),
	}, nil
}

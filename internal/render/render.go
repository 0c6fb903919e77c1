// Package render formats reports for display. It never alters the numbers it
// is given.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/cvsscalc/internal/cvss"
	"github.com/dshills/cvsscalc/internal/report"
	"gopkg.in/yaml.v3"
)

const rule = "============================================================"

// Text renders a report the way the interactive calculator prints it.
func Text(r *report.Report) string {
	var b strings.Builder
	res := r.Result

	b.WriteString("\n" + rule + "\n")
	b.WriteString("📊 CVSS CALCULATION RESULTS\n")
	b.WriteString(rule + "\n")

	b.WriteString("\n🎯 SCORES:\n")
	fmt.Fprintf(&b, "   Exploitability Score: %.2f/10.0\n", res.Exploitability)
	fmt.Fprintf(&b, "   Impact Score:         %.2f/10.0\n", res.Impact)
	fmt.Fprintf(&b, "   Base Score:           %.1f/10.0\n", res.BaseScore)

	fmt.Fprintf(&b, "\n🚦 SEVERITY: %s %s (%.1f)\n", res.Severity.Indicator(), res.Severity, res.BaseScore)

	b.WriteString("\n🔗 Vector String:\n")
	fmt.Fprintf(&b, "   %s\n", res.Vector)

	b.WriteString("\n📋 INPUT SUMMARY:\n")
	for _, m := range cvss.Metrics() {
		fmt.Fprintf(&b, "   %s: %s\n", m.Name, r.Metrics.Get(m.Key))
	}

	b.WriteString("\n💡 INTERPRETATION:\n")
	fmt.Fprintf(&b, "   %s %s\n", priorityIcon(r.Priority), r.Priority.Guidance())

	b.WriteString(rule + "\n")
	return b.String()
}

func priorityIcon(p report.Priority) string {
	switch p {
	case report.PriorityImmediate:
		return "🚨"
	case report.PriorityDays:
		return "🔥"
	case report.PriorityWeeks:
		return "⚠️ "
	case report.PriorityNextCycle:
		return "📝"
	default:
		return "✅"
	}
}

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder
	res := r.Result

	b.WriteString("# CVSS v3.1 Base Score\n\n")
	fmt.Fprintf(&b, "**Base Score:** %.1f (%s)\n", res.BaseScore, res.Severity)
	fmt.Fprintf(&b, "**Vector:** `%s`\n", res.Vector)
	fmt.Fprintf(&b, "**Priority:** %s\n\n", r.Priority.Guidance())

	b.WriteString("## Scores\n\n")
	b.WriteString("| Score | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Exploitability | %.2f |\n", res.Exploitability)
	fmt.Fprintf(&b, "| Impact | %.2f |\n", res.Impact)
	fmt.Fprintf(&b, "| Base | %.1f |\n\n", res.BaseScore)

	b.WriteString("## Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, m := range cvss.Metrics() {
		fmt.Fprintf(&b, "| %s (%s) | %s |\n", m.Name, m.Key, r.Metrics.Get(m.Key))
	}
	b.WriteString("\n")

	switch {
	case r.Input.Preset != "":
		fmt.Fprintf(&b, "_Preset: %s_\n", r.Input.Preset)
	case r.Input.File != "":
		fmt.Fprintf(&b, "_Source file: %s (%s)_\n", r.Input.File, r.Input.FileHash)
	}

	return b.String()
}

// JSON renders a report as indented JSON with a trailing newline.
func JSON(r *report.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// YAML renders a report as YAML.
func YAML(r *report.Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("render.YAML: %w", err)
	}
	return string(data), nil
}

// Guide renders the quick reference of metrics and their values.
func Guide() string {
	var b strings.Builder
	b.WriteString("\n📋 QUICK REFERENCE GUIDE:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")

	icons := map[string]string{
		cvss.KeyAttackVector:       "🌐",
		cvss.KeyAttackComplexity:   "🔧",
		cvss.KeyPrivilegesRequired: "🔑",
		cvss.KeyUserInteraction:    "👆",
		cvss.KeyScope:              "📦",
	}
	for _, m := range cvss.Metrics() {
		// C, I and A share their values and are listed once.
		if m.Key == cvss.KeyIntegrity || m.Key == cvss.KeyAvailability {
			continue
		}
		icon, name := icons[m.Key], m.Name
		if m.Key == cvss.KeyConfidentiality {
			icon, name = "💥", "Impact Metrics (C/I/A)"
		}
		fmt.Fprintf(&b, "\n%s %s:\n", icon, name)
		for _, o := range m.Options {
			fmt.Fprintf(&b, "   %s (%s) - %s\n", o.Value, o.Abbrev, o.Hint)
		}
	}
	b.WriteString("\n")
	return b.String()
}

package cvss

import "strings"

// Vector keys of the eight base metrics, in canonical order.
const (
	KeyAttackVector       = "AV"
	KeyAttackComplexity   = "AC"
	KeyPrivilegesRequired = "PR"
	KeyUserInteraction    = "UI"
	KeyScope              = "S"
	KeyConfidentiality    = "C"
	KeyIntegrity          = "I"
	KeyAvailability       = "A"
)

// Field names reported in selection errors.
const (
	FieldAttackVector       = "AttackVector"
	FieldAttackComplexity   = "AttackComplexity"
	FieldPrivilegesRequired = "PrivilegesRequired"
	FieldUserInteraction    = "UserInteraction"
	FieldScope              = "Scope"
	FieldConfidentiality    = "Confidentiality"
	FieldIntegrity          = "Integrity"
	FieldAvailability       = "Availability"
)

// Option is one allowed value of a metric.
type Option struct {
	Value  string
	Abbrev string
	Hint   string
}

// Metric describes a base metric and its closed set of values.
type Metric struct {
	Key     string
	Field   string
	Name    string
	Options []Option
}

var impactOptions = []Option{
	{string(ImpactNone), "N", "No impact"},
	{string(ImpactLow), "L", "Limited impact"},
	{string(ImpactHigh), "H", "Complete impact"},
}

var baseMetrics = []Metric{
	{KeyAttackVector, FieldAttackVector, "Attack Vector", []Option{
		{string(AttackVectorNetwork), "N", "Internet attackable"},
		{string(AttackVectorAdjacent), "A", "Same network required"},
		{string(AttackVectorLocal), "L", "Local access required"},
		{string(AttackVectorPhysical), "P", "Physical access required"},
	}},
	{KeyAttackComplexity, FieldAttackComplexity, "Attack Complexity", []Option{
		{string(AttackComplexityLow), "L", "Easy to exploit"},
		{string(AttackComplexityHigh), "H", "Hard to exploit"},
	}},
	{KeyPrivilegesRequired, FieldPrivilegesRequired, "Privileges Required", []Option{
		{string(PrivilegesNone), "N", "No authentication needed"},
		{string(PrivilegesLow), "L", "Basic user privileges"},
		{string(PrivilegesHigh), "H", "Admin privileges required"},
	}},
	{KeyUserInteraction, FieldUserInteraction, "User Interaction", []Option{
		{string(UserInteractionNone), "N", "No user interaction"},
		{string(UserInteractionRequired), "R", "User must interact"},
	}},
	{KeyScope, FieldScope, "Scope", []Option{
		{string(ScopeUnchanged), "U", "Single component"},
		{string(ScopeChanged), "C", "Multiple components"},
	}},
	{KeyConfidentiality, FieldConfidentiality, "Confidentiality", impactOptions},
	{KeyIntegrity, FieldIntegrity, "Integrity", impactOptions},
	{KeyAvailability, FieldAvailability, "Availability", impactOptions},
}

// Metrics returns a copy of the base metrics in vector order.
func Metrics() []Metric {
	out := make([]Metric, len(baseMetrics))
	for i, m := range baseMetrics {
		m.Options = append([]Option(nil), m.Options...)
		out[i] = m
	}
	return out
}

func lookupMetric(key string) (Metric, bool) {
	for _, m := range baseMetrics {
		if strings.EqualFold(m.Key, key) {
			return m, true
		}
	}
	return Metric{}, false
}

// Lookup finds the option matching raw by name or abbreviation, ignoring case.
func (m Metric) Lookup(raw string) (Option, bool) {
	raw = strings.TrimSpace(raw)
	for _, o := range m.Options {
		if strings.EqualFold(o.Value, raw) || strings.EqualFold(o.Abbrev, raw) {
			return o, true
		}
	}
	return Option{}, false
}

// exact matches only the canonical value name.
func (m Metric) exact(value string) (Option, bool) {
	for _, o := range m.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

func validValue(key, value string) bool {
	m, _ := lookupMetric(key)
	_, ok := m.exact(value)
	return ok
}

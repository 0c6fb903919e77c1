package cvss

import (
	"fmt"
	"strings"
)

// Selection holds one value for each of the eight base metrics.
type Selection struct {
	AttackVector       AttackVector       `json:"attack_vector" yaml:"attack_vector"`
	AttackComplexity   AttackComplexity   `json:"attack_complexity" yaml:"attack_complexity"`
	PrivilegesRequired PrivilegesRequired `json:"privileges_required" yaml:"privileges_required"`
	UserInteraction    UserInteraction    `json:"user_interaction" yaml:"user_interaction"`
	Scope              Scope              `json:"scope" yaml:"scope"`
	Confidentiality    ImpactLevel        `json:"confidentiality" yaml:"confidentiality"`
	Integrity          ImpactLevel        `json:"integrity" yaml:"integrity"`
	Availability       ImpactLevel        `json:"availability" yaml:"availability"`
}

// Set assigns the metric identified by key (e.g. "AV") from a full value
// name or its abbreviation.
func (s *Selection) Set(key, raw string) error {
	m, ok := lookupMetric(key)
	if !ok {
		return fmt.Errorf("%w: unknown metric %q", ErrMalformedVector, key)
	}
	opt, ok := m.Lookup(raw)
	if !ok {
		return &SelectionError{Field: m.Field, Value: strings.TrimSpace(raw)}
	}
	switch m.Key {
	case KeyAttackVector:
		s.AttackVector = AttackVector(opt.Value)
	case KeyAttackComplexity:
		s.AttackComplexity = AttackComplexity(opt.Value)
	case KeyPrivilegesRequired:
		s.PrivilegesRequired = PrivilegesRequired(opt.Value)
	case KeyUserInteraction:
		s.UserInteraction = UserInteraction(opt.Value)
	case KeyScope:
		s.Scope = Scope(opt.Value)
	case KeyConfidentiality:
		s.Confidentiality = ImpactLevel(opt.Value)
	case KeyIntegrity:
		s.Integrity = ImpactLevel(opt.Value)
	case KeyAvailability:
		s.Availability = ImpactLevel(opt.Value)
	}
	return nil
}

// Get returns the stored value for key, or "" when it is unset or unknown.
func (s Selection) Get(key string) string {
	switch strings.ToUpper(key) {
	case KeyAttackVector:
		return string(s.AttackVector)
	case KeyAttackComplexity:
		return string(s.AttackComplexity)
	case KeyPrivilegesRequired:
		return string(s.PrivilegesRequired)
	case KeyUserInteraction:
		return string(s.UserInteraction)
	case KeyScope:
		return string(s.Scope)
	case KeyConfidentiality:
		return string(s.Confidentiality)
	case KeyIntegrity:
		return string(s.Integrity)
	case KeyAvailability:
		return string(s.Availability)
	}
	return ""
}

// Validate reports the first field, in vector order, that is unset or not a
// member of its domain.
func (s Selection) Validate() error {
	for _, m := range baseMetrics {
		v := s.Get(m.Key)
		if v == "" {
			return &SelectionError{Field: m.Field}
		}
		if _, ok := m.exact(v); !ok {
			return &SelectionError{Field: m.Field, Value: v}
		}
	}
	return nil
}

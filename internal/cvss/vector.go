package cvss

import (
	"fmt"
	"strings"
)

// VectorPrefix starts every v3.1 vector string.
const VectorPrefix = "CVSS:3.1"

// Vector encodes s as a canonical CVSS v3.1 vector string with the eight base
// metrics in fixed order. Unset or unknown values encode as an empty value,
// so callers should Validate first.
func (s Selection) Vector() string {
	var b strings.Builder
	b.WriteString(VectorPrefix)
	for _, m := range baseMetrics {
		opt, _ := m.exact(s.Get(m.Key))
		fmt.Fprintf(&b, "/%s:%s", m.Key, opt.Abbrev)
	}
	return b.String()
}

// ParseVector decodes a CVSS v3.1 base vector. Metrics may appear in any
// order but each must appear exactly once, using its abbreviated value.
func ParseVector(vector string) (Selection, error) {
	var sel Selection
	vector = strings.TrimSpace(vector)

	head, rest, _ := strings.Cut(vector, "/")
	if head != VectorPrefix {
		if strings.HasPrefix(head, "CVSS:") {
			return sel, fmt.Errorf("%w: unsupported version %q", ErrMalformedVector, strings.TrimPrefix(head, "CVSS:"))
		}
		return sel, fmt.Errorf("%w: missing %s prefix", ErrMalformedVector, VectorPrefix)
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(rest, "/") {
		key, val, ok := strings.Cut(part, ":")
		if !ok || key == "" || val == "" {
			return sel, fmt.Errorf("%w: bad component %q", ErrMalformedVector, part)
		}
		m, ok := lookupMetric(key)
		if !ok || m.Key != key {
			return sel, fmt.Errorf("%w: unknown metric %q", ErrMalformedVector, key)
		}
		if seen[key] {
			return sel, fmt.Errorf("%w: duplicate metric %q", ErrMalformedVector, key)
		}
		seen[key] = true

		opt, ok := m.Lookup(val)
		if !ok || opt.Abbrev != val {
			return sel, &SelectionError{Field: m.Field, Value: val}
		}
		if err := sel.Set(key, val); err != nil {
			return sel, err
		}
	}

	for _, m := range baseMetrics {
		if !seen[m.Key] {
			return sel, fmt.Errorf("%w: missing metric %s", ErrMalformedVector, m.Key)
		}
	}
	return sel, nil
}

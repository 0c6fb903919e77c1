package cvss

import (
	"fmt"
	"math"
	"strings"
)

// Severity is the qualitative rating of a base score.
type Severity string

const (
	SeverityNone     Severity = "None"
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Rating bounds, inclusive on both ends.
const (
	noneScore   = 0.0
	lowMin      = 0.1
	lowMax      = 3.9
	mediumMin   = 4.0
	mediumMax   = 6.9
	highMin     = 7.0
	highMax     = 8.9
	criticalMin = 9.0
	criticalMax = maxScore
)

var severityBands = []struct {
	min, max float64
	tier     Severity
}{
	{noneScore, noneScore, SeverityNone},
	{lowMin, lowMax, SeverityLow},
	{mediumMin, mediumMax, SeverityMedium},
	{highMin, highMax, SeverityHigh},
	{criticalMin, criticalMax, SeverityCritical},
}

// Classify maps a base score to its rating. A score that matches no band is
// an invariant violation.
func Classify(score float64) (Severity, error) {
	if math.IsNaN(score) {
		return "", fmt.Errorf("%w: score is NaN", ErrInvariant)
	}
	for _, b := range severityBands {
		if score >= b.min && score <= b.max {
			return b.tier, nil
		}
	}
	return "", fmt.Errorf("%w: score %v matches no severity rating", ErrInvariant, score)
}

func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Rank orders ratings from None (0) to Critical (4); unknown ratings are -1.
func (s Severity) Rank() int {
	switch s {
	case SeverityNone:
		return 0
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return -1
	}
}

// Indicator returns the colored marker shown next to a rating.
func (s Severity) Indicator() string {
	switch s {
	case SeverityNone:
		return "⚪"
	case SeverityLow:
		return "🟢"
	case SeverityMedium:
		return "🟡"
	case SeverityHigh:
		return "🟠"
	case SeverityCritical:
		return "🔴"
	default:
		return "❓"
	}
}

// ParseSeverity accepts a rating name in any case.
func ParseSeverity(s string) (Severity, error) {
	for _, b := range severityBands {
		if strings.EqualFold(string(b.tier), strings.TrimSpace(s)) {
			return b.tier, nil
		}
	}
	return "", fmt.Errorf("unknown severity %q", s)
}

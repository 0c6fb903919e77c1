package cvss

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mysqlSelection() Selection {
	return Selection{
		AttackVector:       AttackVectorNetwork,
		AttackComplexity:   AttackComplexityLow,
		PrivilegesRequired: PrivilegesLow,
		UserInteraction:    UserInteractionNone,
		Scope:              ScopeUnchanged,
		Confidentiality:    ImpactHigh,
		Integrity:          ImpactNone,
		Availability:       ImpactNone,
	}
}

func TestCalculateReferenceVectors(t *testing.T) {
	tests := []struct {
		vector         string
		exploitability float64
		impact         float64
		base           float64
		severity       Severity
	}{
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:N/A:N", 3.89, 3.60, 7.5, SeverityHigh},
		{"CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", 2.84, 3.60, 6.5, SeverityMedium},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H", 3.89, 5.87, 9.8, SeverityCritical},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:H/I:H/A:H", 3.89, 6.05, 10.0, SeverityCritical},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N", 2.84, 2.73, 6.1, SeverityMedium},
		{"CVSS:3.1/AV:P/AC:H/PR:H/UI:R/S:U/C:L/I:N/A:N", 0.12, 1.41, 1.6, SeverityLow},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:N/I:N/A:N", 3.89, 0, 0, SeverityNone},
		{"CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:C/C:N/I:N/A:N", 3.89, 0, 0, SeverityNone},
	}
	for _, tt := range tests {
		t.Run(tt.vector, func(t *testing.T) {
			sel, err := ParseVector(tt.vector)
			require.NoError(t, err)

			res, err := Calculate(sel)
			require.NoError(t, err)

			assert.InDelta(t, tt.exploitability, res.Exploitability, 1e-9)
			assert.InDelta(t, tt.impact, res.Impact, 1e-9)
			assert.Equal(t, tt.base, res.BaseScore)
			assert.Equal(t, tt.severity, res.Severity)
			assert.Equal(t, tt.vector, res.Vector)
		})
	}
}

func TestCalculateMySQLScenario(t *testing.T) {
	res, err := Calculate(mysqlSelection())
	require.NoError(t, err)

	assert.Equal(t, 2.84, res.Exploitability)
	assert.Equal(t, 3.6, res.Impact)
	assert.Equal(t, 6.5, res.BaseScore)
	assert.Equal(t, SeverityMedium, res.Severity)
	assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", res.Vector)
}

func TestCalculateDeterministic(t *testing.T) {
	a, err := Calculate(mysqlSelection())
	require.NoError(t, err)
	b, err := Calculate(mysqlSelection())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCalculateMissingField(t *testing.T) {
	sel := mysqlSelection()
	sel.Availability = ""

	res, err := Calculate(sel)
	require.Error(t, err)
	assert.Equal(t, Result{}, res)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	var se *SelectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, FieldAvailability, se.Field)
	assert.Contains(t, err.Error(), "Availability")
}

func TestCalculateOutOfDomain(t *testing.T) {
	sel := mysqlSelection()
	sel.AttackVector = "Satellite"

	_, err := Calculate(sel)
	var se *SelectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, FieldAttackVector, se.Field)
	assert.Equal(t, "Satellite", se.Value)
}

func TestValidateReportsFirstFieldInOrder(t *testing.T) {
	err := Selection{}.Validate()
	var se *SelectionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, FieldAttackVector, se.Field)
	assert.Empty(t, se.Value)
}

func TestExploitability(t *testing.T) {
	// PR is weighted by scope.
	u := Exploitability(AttackVectorNetwork, AttackComplexityLow, PrivilegesHigh, UserInteractionNone, ScopeUnchanged)
	c := Exploitability(AttackVectorNetwork, AttackComplexityLow, PrivilegesHigh, UserInteractionNone, ScopeChanged)
	assert.Equal(t, 1.23, u)
	assert.Equal(t, 2.29, c)
}

func TestImpactNeverNegative(t *testing.T) {
	for _, scope := range []Scope{ScopeUnchanged, ScopeChanged} {
		got := Impact(scope, ImpactNone, ImpactNone, ImpactNone)
		assert.Equal(t, 0.0, got, "scope %s", scope)
		assert.False(t, math.Signbit(got), "scope %s produced negative zero", scope)
	}
}

func TestBaseScoreCeiling(t *testing.T) {
	// 3.23 + 4.00 = 7.23 rounds up, not to nearest.
	assert.Equal(t, 7.3, BaseScore(3.23, 4.0, ScopeUnchanged))
	assert.Equal(t, 7.5, BaseScore(3.89, 3.6, ScopeUnchanged))
	assert.Equal(t, 10.0, BaseScore(3.89, 6.05, ScopeChanged))
	assert.Equal(t, 0.0, BaseScore(3.89, 0, ScopeChanged))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Severity
	}{
		{0.0, SeverityNone},
		{0.1, SeverityLow},
		{3.9, SeverityLow},
		{4.0, SeverityMedium},
		{6.9, SeverityMedium},
		{7.0, SeverityHigh},
		{8.9, SeverityHigh},
		{9.0, SeverityCritical},
		{10.0, SeverityCritical},
	}
	for _, tt := range tests {
		got, err := Classify(tt.score)
		require.NoError(t, err, "score %v", tt.score)
		assert.Equal(t, tt.want, got, "score %v", tt.score)
	}
}

func TestClassifyInvariantViolation(t *testing.T) {
	for _, score := range []float64{-0.1, 10.1, 3.95, 0.05, math.NaN(), math.Inf(1)} {
		_, err := Classify(score)
		assert.ErrorIs(t, err, ErrInvariant, "score %v", score)
	}
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("critical")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, s)
	assert.Greater(t, SeverityHigh.Rank(), SeverityMedium.Rank())

	_, err = ParseSeverity("severe")
	assert.Error(t, err)
	assert.False(t, Severity("Unknown").Valid())
}

// allSelections enumerates every valid combination of the base metrics.
func allSelections() []Selection {
	out := []Selection{{}}
	for _, m := range Metrics() {
		var next []Selection
		for _, sel := range out {
			for _, o := range m.Options {
				s := sel
				if err := s.Set(m.Key, o.Value); err != nil {
					panic(err)
				}
				next = append(next, s)
			}
		}
		out = next
	}
	return out
}

func TestAllSelectionsInRange(t *testing.T) {
	sels := allSelections()
	require.Len(t, sels, 4*2*3*2*2*3*3*3)

	for _, sel := range sels {
		res, err := Calculate(sel)
		require.NoError(t, err, sel.Vector())

		assert.GreaterOrEqual(t, res.BaseScore, 0.0)
		assert.LessOrEqual(t, res.BaseScore, 10.0)
		assert.InDelta(t, math.Round(res.BaseScore*10), res.BaseScore*10, 1e-9, "%s has more than one decimal", res.Vector)
		assert.GreaterOrEqual(t, res.Impact, 0.0)
		assert.LessOrEqual(t, res.Exploitability, 10.0)
	}
}

func TestImpactMonotonic(t *testing.T) {
	levels := []ImpactLevel{ImpactNone, ImpactLow, ImpactHigh}
	fields := []func(*Selection) *ImpactLevel{
		func(s *Selection) *ImpactLevel { return &s.Confidentiality },
		func(s *Selection) *ImpactLevel { return &s.Integrity },
		func(s *Selection) *ImpactLevel { return &s.Availability },
	}

	for _, sel := range allSelections() {
		for _, field := range fields {
			prev := Result{}
			for i, lvl := range levels {
				s := sel
				*field(&s) = lvl
				res, err := Calculate(s)
				require.NoError(t, err)
				if i > 0 {
					assert.GreaterOrEqual(t, res.Impact, prev.Impact, res.Vector)
					assert.GreaterOrEqual(t, res.BaseScore, prev.BaseScore, res.Vector)
				}
				prev = res
			}
		}
	}
}

func TestVectorShape(t *testing.T) {
	for _, sel := range allSelections() {
		v := sel.Vector()
		require.True(t, strings.HasPrefix(v, VectorPrefix))

		parts := strings.Split(strings.TrimPrefix(v, VectorPrefix+"/"), "/")
		require.Len(t, parts, 8)
		for i, key := range []string{"AV", "AC", "PR", "UI", "S", "C", "I", "A"} {
			assert.True(t, strings.HasPrefix(parts[i], key+":"), "%s field %d", v, i)
		}

		back, err := ParseVector(v)
		require.NoError(t, err)
		assert.Equal(t, sel, back)
	}
}

func TestParseVectorAnyOrder(t *testing.T) {
	sel, err := ParseVector("CVSS:3.1/A:N/I:N/C:H/S:U/UI:N/PR:L/AC:L/AV:N")
	require.NoError(t, err)
	assert.Equal(t, mysqlSelection(), sel)
}

func TestParseVectorErrors(t *testing.T) {
	tests := []struct {
		name    string
		vector  string
		wantErr error
	}{
		{"empty", "", ErrMalformedVector},
		{"no prefix", "AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrMalformedVector},
		{"v3.0", "CVSS:3.0/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrMalformedVector},
		{"missing metric", "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N", ErrMalformedVector},
		{"duplicate", "CVSS:3.1/AV:N/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrMalformedVector},
		{"unknown metric", "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N/E:X", ErrMalformedVector},
		{"lowercase key", "CVSS:3.1/av:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrMalformedVector},
		{"bad component", "CVSS:3.1/AV/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrMalformedVector},
		{"bad value", "CVSS:3.1/AV:X/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrInvalidSelection},
		{"full name value", "CVSS:3.1/AV:Network/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", ErrInvalidSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVector(tt.vector)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelectionSet(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.Set("av", "network"))
	require.NoError(t, sel.Set("PR", "l"))
	require.NoError(t, sel.Set("S", " Changed "))
	assert.Equal(t, AttackVectorNetwork, sel.AttackVector)
	assert.Equal(t, PrivilegesLow, sel.PrivilegesRequired)
	assert.Equal(t, ScopeChanged, sel.Scope)

	err := sel.Set("UI", "sometimes")
	assert.ErrorIs(t, err, ErrInvalidSelection)
	err = sel.Set("XX", "N")
	assert.ErrorIs(t, err, ErrMalformedVector)
}

func TestMetricsReturnsCopy(t *testing.T) {
	ms := Metrics()
	ms[0].Options[0].Abbrev = "Z"
	ms[keyIndex(t, ms, KeyConfidentiality)].Options[2].Value = "Severe"

	assert.True(t, ImpactHigh.Valid())
	assert.Equal(t, "CVSS:3.1/AV:N/AC:L/PR:L/UI:N/S:U/C:H/I:N/A:N", mysqlSelection().Vector())
	assert.Equal(t, "N", Metrics()[0].Options[0].Abbrev)
}

func keyIndex(t *testing.T, ms []Metric, key string) int {
	t.Helper()
	for i, m := range ms {
		if m.Key == key {
			return i
		}
	}
	t.Fatalf("metric %s not found", key)
	return -1
}

func TestEnumValid(t *testing.T) {
	assert.True(t, AttackVectorPhysical.Valid())
	assert.False(t, AttackVector("network").Valid())
	assert.True(t, ScopeChanged.Valid())
	assert.False(t, Scope("").Valid())
	assert.True(t, ImpactLow.Valid())
	assert.False(t, UserInteraction("Low").Valid())
}

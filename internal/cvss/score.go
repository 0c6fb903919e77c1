package cvss

import "math"

// Exploitability computes 8.22 × AV × AC × PR × UI, rounded to two decimals.
// PR is weighted according to scope.
func Exploitability(av AttackVector, ac AttackComplexity, pr PrivilegesRequired, ui UserInteraction, scope Scope) float64 {
	e := exploitabilityCoefficient *
		attackVectorWeights[av] *
		attackComplexityWeights[ac] *
		privilegesWeights[privilegesKey{scope, pr}] *
		userInteractionWeights[ui]
	return round2(e)
}

// ImpactSubScore combines the three impact metrics before scope scaling.
func ImpactSubScore(c, i, a ImpactLevel) float64 {
	return 1 - (1-impactWeights[c])*(1-impactWeights[i])*(1-impactWeights[a])
}

// Impact computes the scope-dependent impact score, floored at zero and
// rounded to two decimals.
func Impact(scope Scope, c, i, a ImpactLevel) float64 {
	iss := ImpactSubScore(c, i, a)
	var impact float64
	if scope == ScopeChanged {
		impact = changedImpactCoefficient*(iss-changedImpactOffset) -
			changedImpactPenalty*math.Pow(iss-changedImpactPenaltyOffset, changedImpactExponent)
	} else {
		impact = unchangedImpactCoefficient * iss
	}
	return math.Max(0, round2(impact))
}

// BaseScore combines the sub-scores. The sum is rounded up to the next tenth,
// never to the nearest, and capped at 10.0. A non-positive impact scores 0.
func BaseScore(exploitability, impact float64, scope Scope) float64 {
	if impact <= 0 {
		return 0
	}
	raw := impact + exploitability
	if scope == ScopeChanged {
		raw = changedScopeMultiplier * raw
	}
	return math.Min(maxScore, roundUp1(raw))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func roundUp1(f float64) float64 {
	return math.Ceil(f*10) / 10
}

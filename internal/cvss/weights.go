package cvss

// Metric weights from the CVSS v3.1 specification, section 7.4.

var attackVectorWeights = map[AttackVector]float64{
	AttackVectorNetwork:  0.85,
	AttackVectorAdjacent: 0.62,
	AttackVectorLocal:    0.55,
	AttackVectorPhysical: 0.20,
}

var attackComplexityWeights = map[AttackComplexity]float64{
	AttackComplexityLow:  0.77,
	AttackComplexityHigh: 0.44,
}

type privilegesKey struct {
	scope Scope
	pr    PrivilegesRequired
}

// Privileges Required is weighted differently when the scope changes.
var privilegesWeights = map[privilegesKey]float64{
	{ScopeUnchanged, PrivilegesNone}: 0.85,
	{ScopeUnchanged, PrivilegesLow}:  0.62,
	{ScopeUnchanged, PrivilegesHigh}: 0.27,
	{ScopeChanged, PrivilegesNone}:   0.85,
	{ScopeChanged, PrivilegesLow}:    0.68,
	{ScopeChanged, PrivilegesHigh}:   0.50,
}

var userInteractionWeights = map[UserInteraction]float64{
	UserInteractionNone:     0.85,
	UserInteractionRequired: 0.62,
}

var impactWeights = map[ImpactLevel]float64{
	ImpactNone: 0.00,
	ImpactLow:  0.22,
	ImpactHigh: 0.56,
}

const (
	exploitabilityCoefficient = 8.22

	unchangedImpactCoefficient = 6.42
	changedImpactCoefficient   = 7.52
	changedImpactOffset        = 0.029
	changedImpactPenalty       = 3.25
	changedImpactPenaltyOffset = 0.02
	changedImpactExponent      = 15

	changedScopeMultiplier = 1.08
	maxScore               = 10.0
)

package cvss

// AttackVector is the context by which exploitation is possible.
type AttackVector string

const (
	AttackVectorNetwork  AttackVector = "Network"
	AttackVectorAdjacent AttackVector = "Adjacent"
	AttackVectorLocal    AttackVector = "Local"
	AttackVectorPhysical AttackVector = "Physical"
)

func (v AttackVector) Valid() bool { return validValue(KeyAttackVector, string(v)) }

// AttackComplexity describes conditions beyond the attacker's control.
type AttackComplexity string

const (
	AttackComplexityLow  AttackComplexity = "Low"
	AttackComplexityHigh AttackComplexity = "High"
)

func (v AttackComplexity) Valid() bool { return validValue(KeyAttackComplexity, string(v)) }

// PrivilegesRequired is the level of privileges an attacker must possess.
type PrivilegesRequired string

const (
	PrivilegesNone PrivilegesRequired = "None"
	PrivilegesLow  PrivilegesRequired = "Low"
	PrivilegesHigh PrivilegesRequired = "High"
)

func (v PrivilegesRequired) Valid() bool { return validValue(KeyPrivilegesRequired, string(v)) }

// UserInteraction captures whether a user other than the attacker must participate.
type UserInteraction string

const (
	UserInteractionNone     UserInteraction = "None"
	UserInteractionRequired UserInteraction = "Required"
)

func (v UserInteraction) Valid() bool { return validValue(KeyUserInteraction, string(v)) }

// Scope reports whether impact reaches beyond the vulnerable component.
type Scope string

const (
	ScopeUnchanged Scope = "Unchanged"
	ScopeChanged   Scope = "Changed"
)

func (v Scope) Valid() bool { return validValue(KeyScope, string(v)) }

// ImpactLevel is shared by the Confidentiality, Integrity and Availability metrics.
type ImpactLevel string

const (
	ImpactNone ImpactLevel = "None"
	ImpactLow  ImpactLevel = "Low"
	ImpactHigh ImpactLevel = "High"
)

func (v ImpactLevel) Valid() bool { return validValue(KeyConfidentiality, string(v)) }

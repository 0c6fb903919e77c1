package report

// Source identifies the input collector that produced the selection.
type Source string

const (
	SourceFlags       Source = "FLAGS"
	SourceVector      Source = "VECTOR"
	SourcePreset      Source = "PRESET"
	SourceFile        Source = "FILE"
	SourceInteractive Source = "INTERACTIVE"
)

func (s Source) Valid() bool {
	switch s {
	case SourceFlags, SourceVector, SourcePreset, SourceFile, SourceInteractive:
		return true
	}
	return false
}

// Priority is the remediation urgency attached to a severity rating.
type Priority string

const (
	PriorityImmediate Priority = "IMMEDIATE"
	PriorityDays      Priority = "WITHIN_DAYS"
	PriorityWeeks     Priority = "WITHIN_WEEKS"
	PriorityNextCycle Priority = "NEXT_MAINTENANCE_CYCLE"
	PriorityNone      Priority = "NO_ACTION"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityImmediate, PriorityDays, PriorityWeeks, PriorityNextCycle, PriorityNone:
		return true
	}
	return false
}

// Guidance is the one-line advice shown for a priority.
func (p Priority) Guidance() string {
	switch p {
	case PriorityImmediate:
		return "CRITICAL - Drop everything and fix immediately!"
	case PriorityDays:
		return "HIGH - Fix this very soon (within days)"
	case PriorityWeeks:
		return "MEDIUM - Fix when convenient (within weeks)"
	case PriorityNextCycle:
		return "LOW - Fix eventually (next maintenance cycle)"
	case PriorityNone:
		return "NONE - No security risk identified"
	}
	return ""
}

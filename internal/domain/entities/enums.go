package entities

// Priority is the urgency level assigned to action items and risk flags
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ValidPriority reports whether p is a known priority level
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ConfidenceLevel is the coarse label derived from a confidence score
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// Confidence label thresholds. The same constants back both the stored
// label and any badge rendered from the score, so they cannot drift.
const (
	ConfidenceHighThreshold   = 0.71
	ConfidenceMediumThreshold = 0.41
)

// ConfidenceLevelForScore derives the coarse label from a numeric score
func ConfidenceLevelForScore(score float64) ConfidenceLevel {
	switch {
	case score >= ConfidenceHighThreshold:
		return ConfidenceHigh
	case score >= ConfidenceMediumThreshold:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ClampScore clamps a confidence score into [0, 1]
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// RiskType classifies a concern the model raised about an action item
type RiskType string

const (
	RiskVagueDescription      RiskType = "vague_description"
	RiskMissingOwner          RiskType = "missing_owner"
	RiskMissingDeadline       RiskType = "missing_deadline"
	RiskUnclearDependency     RiskType = "unclear_dependency"
	RiskScopeTooBroad         RiskType = "scope_too_broad"
	RiskConflictingAssignment RiskType = "conflicting_assignment"
)

// ValidRiskType reports whether t is a known risk type
func ValidRiskType(t RiskType) bool {
	switch t {
	case RiskVagueDescription, RiskMissingOwner, RiskMissingDeadline,
		RiskUnclearDependency, RiskScopeTooBroad, RiskConflictingAssignment:
		return true
	}
	return false
}

// ClarificationField names the action item field a question targets
type ClarificationField string

const (
	FieldOwner        ClarificationField = "owner"
	FieldDeadline     ClarificationField = "deadline"
	FieldDescription  ClarificationField = "description"
	FieldDependencies ClarificationField = "dependencies"
)

// ValidClarificationField reports whether f is a known target field
func ValidClarificationField(f ClarificationField) bool {
	switch f {
	case FieldOwner, FieldDeadline, FieldDescription, FieldDependencies:
		return true
	}
	return false
}

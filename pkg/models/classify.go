package models

import "fmt"

// RiskLevel is the risk tier assigned to a tool invocation.
type RiskLevel string

// Risk tiers, ordered from least to most dangerous.
const (
	RiskSafe        RiskLevel = "safe"
	RiskModerate    RiskLevel = "moderate"
	RiskDestructive RiskLevel = "destructive"
	RiskCritical    RiskLevel = "critical"
)

// rank orders risk tiers for threshold comparisons.
func (r RiskLevel) rank() int {
	switch r {
	case RiskSafe:
		return 0
	case RiskModerate:
		return 1
	case RiskDestructive:
		return 2
	case RiskCritical:
		return 3
	}
	return 3
}

// AutonomyLevel controls which risk tiers execute without human approval.
//
//	L1 Assistant:    everything requires approval.
//	L2 Collaborator: safe actions auto-execute (default).
//	L3 Trusted:      safe and moderate auto-execute.
//	L4 Expert:       only critical actions require approval.
//	L5 YOLO:         full auto-execution. Bypasses approval gates entirely,
//	                 never the kill switch or the audit trail. Session-only
//	                 unless the user explicitly opts in to persistence.
type AutonomyLevel int

// Autonomy levels.
const (
	AutonomyL1 AutonomyLevel = 1
	AutonomyL2 AutonomyLevel = 2
	AutonomyL3 AutonomyLevel = 3
	AutonomyL4 AutonomyLevel = 4
	AutonomyL5 AutonomyLevel = 5
)

// DefaultAutonomyLevel applies to projects with no stored settings.
const DefaultAutonomyLevel = AutonomyL2

// String returns the storage representation ("L1".."L5").
func (l AutonomyLevel) String() string {
	return fmt.Sprintf("L%d", int(l))
}

// Valid reports whether l is one of the five defined levels.
func (l AutonomyLevel) Valid() bool {
	return l >= AutonomyL1 && l <= AutonomyL5
}

// ParseAutonomyLevel converts the storage representation back to a level.
func ParseAutonomyLevel(s string) (AutonomyLevel, error) {
	switch s {
	case "L1":
		return AutonomyL1, nil
	case "L2":
		return AutonomyL2, nil
	case "L3":
		return AutonomyL3, nil
	case "L4":
		return AutonomyL4, nil
	case "L5":
		return AutonomyL5, nil
	}
	return 0, fmt.Errorf("unknown autonomy level %q", s)
}

// AllowsAutoExecution reports whether actions at the given risk tier
// auto-execute at this autonomy level. L1 auto-executes nothing; each level
// above it admits one more tier.
func (l AutonomyLevel) AllowsAutoExecution(risk RiskLevel) bool {
	// Level N auto-executes tiers with rank < N-1, so L2 admits rank 0
	// (safe) and L5 admits everything.
	return risk.rank() < int(l)-1 || l == AutonomyL5
}

// ActionClassification is the classifier's verdict on one tool invocation.
// Pure value object: producing one has no side effects.
type ActionClassification struct {
	ToolName         string         `json:"tool_name"`
	Parameters       map[string]any `json:"parameters,omitempty"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	Reason           string         `json:"reason"`
	RequiresApproval bool           `json:"requires_approval"`
}

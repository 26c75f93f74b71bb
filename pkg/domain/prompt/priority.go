package prompt

import "math"

// Priority bands a gap's residual risk into urgency levels. 1 is most
// urgent; batches sort ascending.
type Priority int

const (
	PriorityCritical Priority = 1
	PriorityHigh     Priority = 2
	PriorityMedium   Priority = 3
	PriorityLow      Priority = 4
	PriorityMinimal  Priority = 5
)

// priorityLabels maps each priority to its display label.
var priorityLabels = map[Priority]string{
	PriorityCritical: "critical",
	PriorityHigh:     "high",
	PriorityMedium:   "medium",
	PriorityLow:      "low",
	PriorityMinimal:  "minimal",
}

// ForResidualRisk bands residual risk into exactly five contiguous ranges:
// >0.20 critical, >0.15 high, >0.10 medium, >0.05 low, else minimal.
func ForResidualRisk(risk float64) Priority {
	switch {
	case risk > 0.20:
		return PriorityCritical
	case risk > 0.15:
		return PriorityHigh
	case risk > 0.10:
		return PriorityMedium
	case risk > 0.05:
		return PriorityLow
	default:
		return PriorityMinimal
	}
}

// Label returns the human-readable name of the priority.
func (p Priority) Label() string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return "unknown"
}

// IsValid returns true for the five defined priority bands.
func (p Priority) IsValid() bool {
	return p >= PriorityCritical && p <= PriorityMinimal
}

// EffortMultiplier scales base effort by severity: 1.5 above 0.7, 1.2
// above 0.4, otherwise 1.0.
func EffortMultiplier(severity float64) float64 {
	switch {
	case severity > 0.7:
		return 1.5
	case severity > 0.4:
		return 1.2
	default:
		return 1.0
	}
}

// EstimateEffort rounds base hours scaled by the severity multiplier.
func EstimateEffort(baseHours int, severity float64) int {
	return int(math.Round(float64(baseHours) * EffortMultiplier(severity)))
}

package services

import (
	"github.com/shopspring/decimal"

	"budgetcore/internal/models"
)

// Decision is the outcome of an enforcement check.
type Decision string

const (
	DecisionAllow Decision = "allow"
	DecisionWarn  Decision = "warn"
	DecisionBlock Decision = "block"
)

// Decide gates a proposed allocation against what is left in the period.
// Anything that fits is allowed regardless of level; an overspend is allowed
// under none, warned under warning and blocked under strict.
func Decide(level models.EnforcementLevel, proposed, remaining int64) Decision {
	if proposed <= remaining {
		return DecisionAllow
	}
	switch level {
	case models.EnforcementStrict:
		return DecisionBlock
	case models.EnforcementWarning:
		return DecisionWarn
	default:
		return DecisionAllow
	}
}

// UtilizationStatus buckets how much of an allocation has been spent.
type UtilizationStatus string

const (
	UtilizationSafe     UtilizationStatus = "safe"
	UtilizationCaution  UtilizationStatus = "caution"
	UtilizationWarning  UtilizationStatus = "warning"
	UtilizationCritical UtilizationStatus = "critical"
	UtilizationExceeded UtilizationStatus = "exceeded"
)

// DeficitSeverity buckets how far an overspent period went over. Its
// thresholds are independent of the utilization ones.
type DeficitSeverity string

const (
	DeficitNone     DeficitSeverity = "none"
	DeficitLow      DeficitSeverity = "low"
	DeficitMedium   DeficitSeverity = "medium"
	DeficitHigh     DeficitSeverity = "high"
	DeficitCritical DeficitSeverity = "critical"
)

var (
	hundred = decimal.NewFromInt(100)

	utilizationExceededAbove = decimal.NewFromInt(100)
	utilizationCriticalAt    = decimal.NewFromInt(90)
	utilizationWarningAt     = decimal.NewFromInt(80)
	utilizationCautionAt     = decimal.NewFromInt(70)

	deficitCriticalAt = decimal.NewFromInt(75)
	deficitHighAt     = decimal.NewFromInt(40)
	deficitMediumAt   = decimal.NewFromInt(20)
)

// Percentage returns part/whole × 100. A zero whole yields zero for a zero
// part and 100 otherwise.
func Percentage(part, whole int64) decimal.Decimal {
	if whole == 0 {
		if part == 0 {
			return decimal.Zero
		}
		return hundred
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(whole)).Mul(hundred)
}

// ClassifyUtilizationRate maps a spend rate in percent to its status.
func ClassifyUtilizationRate(rate decimal.Decimal) UtilizationStatus {
	switch {
	case rate.GreaterThan(utilizationExceededAbove):
		return UtilizationExceeded
	case rate.GreaterThanOrEqual(utilizationCriticalAt):
		return UtilizationCritical
	case rate.GreaterThanOrEqual(utilizationWarningAt):
		return UtilizationWarning
	case rate.GreaterThanOrEqual(utilizationCautionAt):
		return UtilizationCaution
	default:
		return UtilizationSafe
	}
}

// ClassifyUtilization classifies actual spend against the allocation.
func ClassifyUtilization(actual, allocated int64) UtilizationStatus {
	if allocated <= 0 && actual > 0 {
		return UtilizationExceeded
	}
	return ClassifyUtilizationRate(Percentage(actual, allocated))
}

// ClassifyDeficitRate maps an overage in percent of the allocation to its severity.
func ClassifyDeficitRate(overage decimal.Decimal) DeficitSeverity {
	switch {
	case overage.GreaterThanOrEqual(deficitCriticalAt):
		return DeficitCritical
	case overage.GreaterThanOrEqual(deficitHighAt):
		return DeficitHigh
	case overage.GreaterThanOrEqual(deficitMediumAt):
		return DeficitMedium
	default:
		return DeficitLow
	}
}

// ClassifyDeficit classifies a deficit (amount overspent, positive) against
// the allocation. No deficit yields DeficitNone.
func ClassifyDeficit(deficit, allocated int64) DeficitSeverity {
	if deficit <= 0 {
		return DeficitNone
	}
	if allocated <= 0 {
		return DeficitCritical
	}
	return ClassifyDeficitRate(Percentage(deficit, allocated))
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"budgetcore/internal/models"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		level     models.EnforcementLevel
		proposed  int64
		remaining int64
		want      Decision
	}{
		{"none_over", models.EnforcementNone, 150, 100, DecisionAllow},
		{"warning_over", models.EnforcementWarning, 150, 100, DecisionWarn},
		{"strict_over", models.EnforcementStrict, 150, 100, DecisionBlock},
		{"none_within", models.EnforcementNone, 80, 100, DecisionAllow},
		{"warning_within", models.EnforcementWarning, 80, 100, DecisionAllow},
		{"strict_within", models.EnforcementStrict, 80, 100, DecisionAllow},
		{"strict_exact_fit", models.EnforcementStrict, 100, 100, DecisionAllow},
		{"strict_negative_remaining", models.EnforcementStrict, 1, -50, DecisionBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.level, tt.proposed, tt.remaining); got != tt.want {
				t.Errorf("Decide(%s, %d, %d) = %s, want %s", tt.level, tt.proposed, tt.remaining, got, tt.want)
			}
		})
	}
}

func TestClassifyUtilizationRate(t *testing.T) {
	tests := []struct {
		rate string
		want UtilizationStatus
	}{
		{"0", UtilizationSafe},
		{"69.9", UtilizationSafe},
		{"70", UtilizationCaution},
		{"79.99", UtilizationCaution},
		{"80", UtilizationWarning},
		{"90", UtilizationCritical},
		{"100", UtilizationCritical},
		{"100.01", UtilizationExceeded},
		{"101", UtilizationExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			got := ClassifyUtilizationRate(decimal.RequireFromString(tt.rate))
			if got != tt.want {
				t.Errorf("rate %s: expected %s, got %s", tt.rate, tt.want, got)
			}
		})
	}
}

func TestClassifyUtilization(t *testing.T) {
	t.Run("from_amounts", func(t *testing.T) {
		if got := ClassifyUtilization(700, 1000); got != UtilizationCaution {
			t.Errorf("expected caution, got %s", got)
		}
		if got := ClassifyUtilization(699, 1000); got != UtilizationSafe {
			t.Errorf("expected safe, got %s", got)
		}
		if got := ClassifyUtilization(1010, 1000); got != UtilizationExceeded {
			t.Errorf("expected exceeded, got %s", got)
		}
	})

	t.Run("zero_allocation", func(t *testing.T) {
		if got := ClassifyUtilization(0, 0); got != UtilizationSafe {
			t.Errorf("expected safe for nothing spent, got %s", got)
		}
		if got := ClassifyUtilization(1, 0); got != UtilizationExceeded {
			t.Errorf("expected exceeded for spend without allocation, got %s", got)
		}
	})
}

func TestClassifyDeficit(t *testing.T) {
	tests := []struct {
		name      string
		deficit   int64
		allocated int64
		want      DeficitSeverity
	}{
		{"no_deficit", 0, 1000, DeficitNone},
		{"surplus", -100, 1000, DeficitNone},
		{"low", 199, 1000, DeficitLow},
		{"medium", 200, 1000, DeficitMedium},
		{"high", 400, 1000, DeficitHigh},
		{"critical", 750, 1000, DeficitCritical},
		{"no_allocation", 10, 0, DeficitCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDeficit(tt.deficit, tt.allocated); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("thresholds_differ_from_utilization", func(t *testing.T) {
		// 75% is only caution for utilization but critical as a deficit.
		rate := decimal.NewFromInt(75)
		if ClassifyUtilizationRate(rate) != UtilizationCaution {
			t.Error("expected 75% utilization to be caution")
		}
		if ClassifyDeficitRate(rate) != DeficitCritical {
			t.Error("expected 75% deficit to be critical")
		}
	})
}

func TestPercentage(t *testing.T) {
	if got := Percentage(250, 1000); !got.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25, got %s", got)
	}
	if got := Percentage(0, 0); !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
	if got := Percentage(5, 0); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 100, got %s", got)
	}
}

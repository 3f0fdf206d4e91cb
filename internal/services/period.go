package services

import (
	"fmt"
	"time"

	apperrors "budgetcore/internal/errors"
	"budgetcore/internal/models"
)

// PeriodBoundaries is an inclusive date window in YYYY-MM-DD form.
type PeriodBoundaries struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Days returns the number of calendar days in the window.
func (b PeriodBoundaries) Days() int {
	start, err1 := parseDate(b.StartDate)
	end, err2 := parseDate(b.EndDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Overlaps reports whether the two inclusive windows share at least one day.
func (b PeriodBoundaries) Overlaps(other PeriodBoundaries) bool {
	return b.StartDate <= other.EndDate && other.StartDate <= b.EndDate
}

// ValidateTemplate rejects templates whose type or anchors cannot produce a
// period. A zero anchor means "use the default" (day 1 / Sunday).
func ValidateTemplate(t *models.BudgetPeriodTemplate) error {
	invalid := func(format string, args ...any) error {
		return apperrors.WithMessage(apperrors.ErrInvalidPeriodTemplate, fmt.Sprintf(format, args...))
	}

	switch t.Type {
	case models.PeriodMonthly, models.PeriodQuarterly:
		if t.StartDayOfMonth < 0 || t.StartDayOfMonth > 31 {
			return invalid("start_day_of_month must be between 1 and 31, got %d", t.StartDayOfMonth)
		}
	case models.PeriodWeekly:
		if t.StartDayOfWeek < 0 || t.StartDayOfWeek > 6 {
			return invalid("start_day_of_week must be between 0 and 6, got %d", t.StartDayOfWeek)
		}
	case models.PeriodYearly:
		if t.StartDayOfYear < 0 || t.StartDayOfYear > 366 {
			return invalid("start_day_of_year must be between 1 and 366, got %d", t.StartDayOfYear)
		}
	case models.PeriodCustom:
		if t.StartDayOfYear < 0 || t.StartDayOfYear > 366 {
			return invalid("start_day_of_year must be between 1 and 366, got %d", t.StartDayOfYear)
		}
		if t.IntervalCount < 1 {
			return invalid("custom periods need an interval_count of at least 1 day, got %d", t.IntervalCount)
		}
	default:
		return invalid("unsupported period type %q", t.Type)
	}
	return nil
}

// ComputePeriodBoundaries returns the window of the template's recurrence
// that contains ref. It is pure: the same template and reference date always
// produce the same window.
func ComputePeriodBoundaries(t *models.BudgetPeriodTemplate, ref time.Time) (PeriodBoundaries, error) {
	if err := ValidateTemplate(t); err != nil {
		return PeriodBoundaries{}, err
	}

	day := civilDate(ref)
	var start, end time.Time

	switch t.Type {
	case models.PeriodMonthly:
		anchor := defaultAnchor(t.StartDayOfMonth)
		start = monthAnchor(day.Year(), day.Month(), anchor)
		if day.Before(start) {
			start = monthAnchor(day.Year(), day.Month()-1, anchor)
		}
		end = monthAnchor(start.Year(), start.Month()+1, anchor).AddDate(0, 0, -1)

	case models.PeriodQuarterly:
		anchor := defaultAnchor(t.StartDayOfMonth)
		quarterMonth := time.Month((int(day.Month())-1)/3*3 + 1)
		start = monthAnchor(day.Year(), quarterMonth, anchor)
		if day.Before(start) {
			start = monthAnchor(day.Year(), quarterMonth-3, anchor)
		}
		end = monthAnchor(start.Year(), start.Month()+3, anchor).AddDate(0, 0, -1)

	case models.PeriodWeekly:
		offset := (int(day.Weekday()) - t.StartDayOfWeek + 7) % 7
		start = day.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)

	case models.PeriodYearly:
		anchor := defaultAnchor(t.StartDayOfYear)
		start = yearAnchor(day.Year(), anchor)
		if day.Before(start) {
			start = yearAnchor(day.Year()-1, anchor)
		}
		end = yearAnchor(start.Year()+1, anchor).AddDate(0, 0, -1)

	case models.PeriodCustom:
		// Windows step from a single origin so instances created in different
		// years never straddle each other.
		originYear := day.Year()
		if !t.CreatedAt.IsZero() {
			originYear = t.CreatedAt.Year()
		}
		origin := yearAnchor(originYear, defaultAnchor(t.StartDayOfYear))
		elapsed := daysBetween(origin, day)
		step := floorDiv(elapsed, t.IntervalCount)
		start = origin.AddDate(0, 0, step*t.IntervalCount)
		end = start.AddDate(0, 0, t.IntervalCount-1)
	}

	return PeriodBoundaries{StartDate: formatDate(start), EndDate: formatDate(end)}, nil
}

// ComputeRollover returns what a finished period carries into the next one:
// positive for a surplus, negative for a deficit.
func ComputeRollover(p *models.BudgetPeriodInstance) int64 {
	return p.TotalAvailable() - p.ActualAmount
}

// nextPeriodReference returns the first day after the period, which always
// falls in the following window.
func nextPeriodReference(p *models.BudgetPeriodInstance) (time.Time, error) {
	end, err := parseDate(p.EndDate)
	if err != nil {
		return time.Time{}, err
	}
	return end.AddDate(0, 0, 1), nil
}

func defaultAnchor(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

// monthAnchor returns the anchor day in the given month, clamped to the
// month's length. Month values outside 1..12 roll into adjacent years.
func monthAnchor(year int, month time.Month, day int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// yearAnchor returns the given day-of-year, clamped to the year's length.
func yearAnchor(year, dayOfYear int) time.Time {
	if last := daysInYear(year); dayOfYear > last {
		dayOfYear = last
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// civilDate drops the clock and zone, keeping the calendar date as seen in
// the reference time's own location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

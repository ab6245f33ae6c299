package risk

import (
	"sort"
	"time"

	"github.com/epc-intel/models"
)

// DailySpend is one day of actual spend, however it was sourced
type DailySpend struct {
	Date      time.Time `json:"date"`
	Wages     float64   `json:"wages"`
	Materials float64   `json:"materials"`
	Machinery float64   `json:"machinery"`
	Total     float64   `json:"total"`
}

// ActualsSource produces the actual daily spend series for a milestone up to
// an as-of date. Two implementations exist: LogBook reads manually recorded
// daily logs (the source of record), PlanFollower derives the series from
// the planned schedule for milestones with no logs yet.
type ActualsSource interface {
	Actuals(ms models.Milestone, asOf time.Time) []DailySpend
}

// LogBook sources actuals from manually recorded daily log entries.
type LogBook struct {
	Entries []models.DailyLog
}

// Actuals returns one DailySpend per log entry belonging to the milestone,
// ordered by date.
func (b LogBook) Actuals(ms models.Milestone, asOf time.Time) []DailySpend {
	series := make([]DailySpend, 0, len(b.Entries))
	for _, e := range b.Entries {
		if e.MilestoneID != ms.ID {
			continue
		}
		series = append(series, DailySpend{
			Date:      dateOnly(e.Date),
			Wages:     e.Wages,
			Materials: e.Materials,
			Machinery: e.Machinery,
			Total:     e.Total(),
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// PlanFollower sources actuals from the planned schedule, sliced to the days
// that have elapsed. Actuals are then synonymous with plan, which is only
// sound for milestones with no recorded deviations.
type PlanFollower struct{}

// Actuals returns the planned schedule rows dated on or before asOf.
func (PlanFollower) Actuals(ms models.Milestone, asOf time.Time) []DailySpend {
	cutoff := dateOnly(asOf)
	var series []DailySpend
	for _, row := range PlannedSchedule(ms) {
		if row.Date.After(cutoff) {
			break
		}
		series = append(series, DailySpend{
			Date:      row.Date,
			Wages:     row.Wages,
			Materials: row.Materials,
			Machinery: row.Machinery,
			Total:     row.Total,
		})
	}
	return series
}

// DaysElapsed returns how many milestone days have passed as of the given
// date, counting the start date itself as day one and clamped to the
// milestone's valid day range.
func DaysElapsed(ms models.Milestone, asOf time.Time) int {
	deadline := ms.DeadlineDays
	if deadline < 1 {
		deadline = 1
	}
	return clampInt(daysBetween(ms.StartDate, asOf)+1, 0, deadline)
}

// DaysRemaining returns how many milestone days are left as of the given
// date, clamped to the milestone's valid day range. Elapsed and remaining
// need not sum to the duration while a clamp is active.
func DaysRemaining(ms models.Milestone, asOf time.Time) int {
	deadline := ms.DeadlineDays
	if deadline < 1 {
		deadline = 1
	}
	end := dateOnly(ms.StartDate).AddDate(0, 0, deadline)
	return clampInt(daysBetween(asOf, end), 0, deadline)
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from one date to another,
// negative when "to" is earlier.
func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

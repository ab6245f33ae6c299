package risk

import (
	"time"

	"github.com/epc-intel/models"
)

// ScheduleRow is one projected day of spend in a milestone's planned schedule
type ScheduleRow struct {
	Date      time.Time `json:"date"`
	DayIndex  int       `json:"dayIndex"`
	Wages     float64   `json:"wages"`
	Materials float64   `json:"materials"`
	Machinery float64   `json:"machinery"`
	Total     float64   `json:"total"`
}

// PlannedSchedule expands a milestone's resource model into one row per day
// of its duration, starting at StartDate. Labour and machinery contribute on
// day index i only while i is inside their hired window; material cost is
// spread evenly across the full duration. The result is fully determined by
// the milestone record and regenerates identically on every call.
func PlannedSchedule(ms models.Milestone) []ScheduleRow {
	days := ms.DeadlineDays
	if days < 1 {
		days = 1
	}

	materialsPerDay := MaterialCost(ms.Materials) / float64(days)

	rows := make([]ScheduleRow, 0, days)
	for i := 0; i < days; i++ {
		var wages, machinery float64
		for _, l := range ms.Labourers {
			if i < l.Days {
				wages += float64(l.Count) * l.DailyRate
			}
		}
		for _, m := range ms.Machines {
			if i < m.Days {
				machinery += float64(m.Count) * m.DailyRate
			}
		}

		rows = append(rows, ScheduleRow{
			Date:      dateOnly(ms.StartDate).AddDate(0, 0, i),
			DayIndex:  i,
			Wages:     wages,
			Materials: materialsPerDay,
			Machinery: machinery,
			Total:     wages + materialsPerDay + machinery,
		})
	}

	return rows
}

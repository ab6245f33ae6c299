package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epc-intel/models"
)

func TestLogBookFiltersAndOrders(t *testing.T) {
	ms := testMilestone(30, 50000)
	book := LogBook{Entries: []models.DailyLog{
		{MilestoneID: "ms-1", Date: testStart.AddDate(0, 0, 2), Wages: 300, Materials: 100, Machinery: 50},
		{MilestoneID: "other", Date: testStart, Wages: 999},
		{MilestoneID: "ms-1", Date: testStart, Wages: 200, Materials: 80, Machinery: 20},
	}}

	series := book.Actuals(ms, testStart.AddDate(0, 0, 10))
	require.Len(t, series, 2)
	assert.True(t, series[0].Date.Before(series[1].Date))
	assert.Equal(t, 300.0, series[0].Total)
	assert.Equal(t, 450.0, series[1].Total)
}

func TestPlanFollowerSlicesToAsOf(t *testing.T) {
	ms := scheduleFixture()
	var source ActualsSource = PlanFollower{}

	cases := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"before start", testStart.AddDate(0, 0, -1), 0},
		{"on start", testStart, 1},
		{"day ten", testStart.AddDate(0, 0, 9), 10},
		{"past deadline", testStart.AddDate(0, 0, 60), 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series := source.Actuals(ms, tc.asOf)
			assert.Len(t, series, tc.want)
		})
	}
}

func TestPlanFollowerMatchesSchedule(t *testing.T) {
	ms := scheduleFixture()
	series := PlanFollower{}.Actuals(ms, testStart.AddDate(0, 0, 4))
	rows := PlannedSchedule(ms)

	require.Len(t, series, 5)
	for i, d := range series {
		assert.Equal(t, rows[i].Date, d.Date)
		assert.Equal(t, rows[i].Total, d.Total)
	}
}

func TestPlanFollowerScoresAtPlanPace(t *testing.T) {
	// A plan-sourced series always burns exactly at its own pace, so a
	// milestone whose plan matches its budget scores as on-schedule.
	ms := testMilestone(20, 20000)
	ms.Labourers = models.LabourerList{{Name: "Crew", Count: 10, DailyRate: 100, Days: 20}}

	asOf := testStart.AddDate(0, 0, 9)
	m := Score(ms, PlanFollower{}.Actuals(ms, asOf), asOf)
	assert.InDelta(t, 1.0, m.BurnEfficiency, 0.001)
}

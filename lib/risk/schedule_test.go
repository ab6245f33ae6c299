package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epc-intel/models"
)

func scheduleFixture() models.Milestone {
	ms := testMilestone(30, 50000)
	ms.Labourers = models.LabourerList{
		{Name: "Masons", Count: 5, DailyRate: 120, Days: 30},
		{Name: "Electricians", Count: 2, DailyRate: 200, Days: 10},
	}
	ms.Materials = models.MaterialList{
		{Name: "Cement", Quantity: 100, UnitCost: 10},
		{Name: "Rebar", Quantity: 40, UnitCost: 55},
	}
	ms.Machines = models.MachineList{
		{Name: "Excavator", Count: 1, DailyRate: 500, Days: 5},
	}
	return ms
}

func TestPlannedScheduleShape(t *testing.T) {
	ms := scheduleFixture()
	rows := PlannedSchedule(ms)

	require.Len(t, rows, 30)
	assert.Equal(t, dateOnly(ms.StartDate), rows[0].Date)
	assert.Equal(t, dateOnly(ms.StartDate).AddDate(0, 0, 29), rows[29].Date)

	for i, row := range rows {
		assert.Equal(t, i, row.DayIndex)
		assert.InDelta(t, row.Wages+row.Materials+row.Machinery, row.Total, 1e-9, "day %d", i)
	}
}

func TestPlannedScheduleResourceWindows(t *testing.T) {
	rows := PlannedSchedule(scheduleFixture())

	// Both labour categories active on day 0, only masons after day 9.
	assert.Equal(t, 5*120.0+2*200.0, rows[0].Wages)
	assert.Equal(t, 5*120.0, rows[10].Wages)
	assert.Equal(t, 5*120.0, rows[29].Wages)

	// Excavator rented for the first five days only.
	assert.Equal(t, 500.0, rows[4].Machinery)
	assert.Zero(t, rows[5].Machinery)
}

func TestPlannedScheduleMaterialRoundTrip(t *testing.T) {
	ms := scheduleFixture()
	rows := PlannedSchedule(ms)

	var materialSum float64
	for _, row := range rows {
		materialSum += row.Materials
	}
	assert.InDelta(t, MaterialCost(ms.Materials), materialSum, 1e-6)
}

func TestPlannedScheduleZeroDurationFloorsToOneDay(t *testing.T) {
	ms := testMilestone(0, 1000)
	ms.Materials = models.MaterialList{{Name: "Gravel", Quantity: 10, UnitCost: 10}}

	rows := PlannedSchedule(ms)
	require.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].Materials)
}

func TestResourceCosts(t *testing.T) {
	ms := scheduleFixture()

	assert.Equal(t, 5*120.0*30+2*200.0*10, LabourCost(ms.Labourers))
	assert.Equal(t, 100*10.0+40*55.0, MaterialCost(ms.Materials))
	assert.Equal(t, 1*500.0*5, MachineCost(ms.Machines))
	assert.Equal(t,
		LabourCost(ms.Labourers)+MaterialCost(ms.Materials)+MachineCost(ms.Machines),
		PlannedTotal(ms))
}

func TestResourceCostsEmptyListsAreZero(t *testing.T) {
	assert.Zero(t, LabourCost(nil))
	assert.Zero(t, MaterialCost(nil))
	assert.Zero(t, MachineCost(nil))
	assert.Zero(t, PlannedTotal(models.Milestone{DeadlineDays: 10}))
}

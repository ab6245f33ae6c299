package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epc-intel/models"
)

var testStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func testMilestone(deadlineDays int, totalCost float64) models.Milestone {
	return models.Milestone{
		ID:           "ms-1",
		Title:        "Foundation Works",
		StartDate:    testStart,
		DeadlineDays: deadlineDays,
		TotalCost:    totalCost,
	}
}

// flatSpend builds n days of identical spend starting at the milestone start date.
func flatSpend(n int, wages, materials, machinery float64) []DailySpend {
	series := make([]DailySpend, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, DailySpend{
			Date:      testStart.AddDate(0, 0, i),
			Wages:     wages,
			Materials: materials,
			Machinery: machinery,
			Total:     wages + materials + machinery,
		})
	}
	return series
}

func TestScoreStaysBounded(t *testing.T) {
	cases := []struct {
		name    string
		ms      models.Milestone
		actuals []DailySpend
		asOf    time.Time
	}{
		{"no observations", testMilestone(30, 50000), nil, testStart},
		{"on budget", testMilestone(30, 30000), flatSpend(10, 500, 300, 200), testStart.AddDate(0, 0, 9)},
		{"massive overrun", testMilestone(10, 1000), flatSpend(10, 5000, 5000, 5000), testStart.AddDate(0, 0, 9)},
		{"past deadline", testMilestone(5, 10000), flatSpend(5, 1000, 500, 500), testStart.AddDate(0, 0, 40)},
		{"zero budget", testMilestone(10, 0), flatSpend(3, 100, 0, 0), testStart.AddDate(0, 0, 2)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Score(tc.ms, tc.actuals, tc.asOf)
			assert.GreaterOrEqual(t, m.Score, 0)
			assert.LessOrEqual(t, m.Score, 100)
			assert.LessOrEqual(t, m.PoD, 0.95)
			assert.LessOrEqual(t, m.CoDNorm, 1.0)
		})
	}
}

func TestScoreNotStartedCollapsesToUrgency(t *testing.T) {
	cases := []struct {
		name     string
		deadline int
		wantPoD  float64
	}{
		{"far deadline has no urgency", 30, 0.0},
		{"two weeks out", 14, 0.15},
		{"one week out", 7, 0.35},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ms := testMilestone(tc.deadline, 50000)
			m := Score(ms, nil, testStart)

			assert.True(t, m.NotStarted)
			assert.Equal(t, tc.wantPoD, m.PoD)
			assert.Zero(t, m.TotalSpent)
			assert.Zero(t, m.CoDNorm)
			// Assumed on-budget pace projects exactly the contract value.
			assert.Equal(t, ms.TotalCost, m.ProjectedTotal)
		})
	}
}

func TestScoreNotStartedThirtyDayMilestone(t *testing.T) {
	// 30 days remaining, no observations: score carries only the
	// cash-flow timing layer, 0.40 x 0.25 x 100 = 10.
	m := Score(testMilestone(30, 50000), nil, testStart)

	assert.Equal(t, 0.0, m.PoD)
	assert.Equal(t, 0.40, m.CFTS)
	assert.Equal(t, 10, m.Score)
}

func TestCashFlowSensitivitySteps(t *testing.T) {
	cases := []struct {
		remaining int
		want      float64
	}{
		{0, 1.00}, {3, 1.00}, {4, 0.85}, {7, 0.85},
		{8, 0.65}, {14, 0.65}, {15, 0.40}, {30, 0.40},
		{31, 0.20}, {365, 0.20},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CashFlowSensitivity(tc.remaining), "remaining=%d", tc.remaining)
	}
}

func TestCashFlowSensitivityNonIncreasing(t *testing.T) {
	prev := CashFlowSensitivity(0)
	for remaining := 1; remaining <= 60; remaining++ {
		cur := CashFlowSensitivity(remaining)
		assert.LessOrEqual(t, cur, prev, "remaining=%d", remaining)
		prev = cur
	}
}

func TestScoreFiveDayMilestoneThreeRemaining(t *testing.T) {
	ms := testMilestone(5, 10000)
	asOf := testStart.AddDate(0, 0, 2) // 3 days left of 5

	require.Equal(t, 3, DaysRemaining(ms, asOf))
	m := Score(ms, flatSpend(2, 1000, 500, 500), asOf)
	assert.Equal(t, 1.00, m.CFTS)
}

func TestScoreIdempotent(t *testing.T) {
	ms := testMilestone(30, 50000)
	ms.Labourers = models.LabourerList{{Name: "Masons", Count: 5, DailyRate: 120, Days: 30}}
	actuals := flatSpend(12, 900, 400, 300)
	asOf := testStart.AddDate(0, 0, 11)

	first := Score(ms, actuals, asOf)
	second := Score(ms, actuals, asOf)
	assert.Equal(t, first, second)
}

func TestScoreDegenerateInputs(t *testing.T) {
	t.Run("one day duration", func(t *testing.T) {
		m := Score(testMilestone(1, 1000), flatSpend(1, 500, 0, 0), testStart)
		assert.GreaterOrEqual(t, m.Score, 0)
		assert.LessOrEqual(t, m.Score, 100)
	})

	t.Run("zero duration floors to one", func(t *testing.T) {
		m := Score(testMilestone(0, 1000), nil, testStart)
		assert.Equal(t, 1000.0, m.AvgDaily)
	})

	t.Run("zero budget uses floor-1 denominator", func(t *testing.T) {
		m := Score(testMilestone(10, 0), flatSpend(2, 50, 0, 0), testStart.AddDate(0, 0, 1))
		// pct_spent is computed against a floor of 1, not a crash
		assert.Equal(t, 100.0, m.PctSpent)
	})
}

func TestScoreBurnEfficiencyDoublePace(t *testing.T) {
	// Budget implies 1000/day over 30 days; actuals run at 2000/day for 15
	// days, i.e. 100% of budget at 50% of timeline.
	ms := testMilestone(30, 30000)
	m := Score(ms, flatSpend(15, 1000, 600, 400), testStart.AddDate(0, 0, 14))

	assert.InDelta(t, 2.0, m.BurnEfficiency, 0.001)
	assert.InDelta(t, 2000.0, m.AvgDaily, 0.001)
	assert.InDelta(t, 60000.0, m.ProjectedTotal, 0.001)
}

func TestScoreBurnEfficiencyGuardNearStart(t *testing.T) {
	// pct_time at or below 0.05 falls back to neutral efficiency.
	ms := testMilestone(100, 100000)
	m := Score(ms, flatSpend(5, 9000, 0, 0), testStart.AddDate(0, 0, 4))
	assert.Equal(t, 1.0, m.BurnEfficiency)
}

func TestScoreCashRunway(t *testing.T) {
	t.Run("from burn rate", func(t *testing.T) {
		ms := testMilestone(30, 30000)
		m := Score(ms, flatSpend(10, 1000, 0, 0), testStart.AddDate(0, 0, 9))
		// 20000 remaining at 1000/day
		assert.Equal(t, 20.0, m.DaysOfCashLeft)
	})

	t.Run("zero burn falls back to schedule runway", func(t *testing.T) {
		ms := testMilestone(30, 30000)
		asOf := testStart.AddDate(0, 0, 4)
		m := Score(ms, flatSpend(5, 0, 0, 0), asOf)
		assert.Equal(t, float64(DaysRemaining(ms, asOf)), m.DaysOfCashLeft)
	})
}

func TestDaysElapsedAndRemainingClamp(t *testing.T) {
	ms := testMilestone(30, 50000)

	cases := []struct {
		name          string
		asOf          time.Time
		wantElapsed   int
		wantRemaining int
	}{
		{"before start", testStart.AddDate(0, 0, -5), 0, 30},
		{"on start", testStart, 1, 30},
		{"mid-flight", testStart.AddDate(0, 0, 14), 15, 16},
		{"last day", testStart.AddDate(0, 0, 29), 30, 1},
		{"after end", testStart.AddDate(0, 0, 45), 30, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantElapsed, DaysElapsed(ms, tc.asOf))
			assert.Equal(t, tc.wantRemaining, DaysRemaining(ms, tc.asOf))
		})
	}
}

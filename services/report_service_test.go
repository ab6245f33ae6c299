package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/models"
)

func reportRowsFixture() []dto.RiskReportRow {
	return []dto.RiskReportRow{
		{
			MilestoneID: "id-1", Code: "MS-aaaa1111", Title: "Foundation Works",
			DeadlineDays: 30, TotalBudget: 50000, TotalSpent: 12000,
			RemainingBudget: 38000, ProjectedTotal: 48000, AvgDaily: 1600,
			PoD: 0.42, CoDPerDay: 1600, CFTS: 0.40, Score: 55, RiskLevel: "HIGH",
			BurnEfficiency: 1.2, DaysOfCashLeft: 23.8, DaysLogged: 8,
			TopAdvisory: "Spend pace 20% above plan.",
		},
		{
			MilestoneID: "id-2", Code: "MS-bbbb2222", Title: "Roofing, phase 2",
			DeadlineDays: 60, TotalBudget: 80000, Score: 12, RiskLevel: "LOW",
			BurnEfficiency: 1.0, DaysOfCashLeft: 60, TopAdvisory: "Milestone is within budget and timeline.",
		},
	}
}

func TestRenderRiskCSV(t *testing.T) {
	out, err := RenderRiskCSV(reportRowsFixture())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, riskReportHeader, records[0])
	assert.Equal(t, "Foundation Works", records[1][2])
	assert.Equal(t, "55", records[1][12])
	assert.Equal(t, "HIGH", records[1][13])
	// A title containing a comma survives the round trip
	assert.Equal(t, "Roofing, phase 2", records[2][2])
}

func TestRenderRiskXLSX(t *testing.T) {
	out, err := RenderRiskXLSX(reportRowsFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Risk Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Milestone ID", rows[0][0])
	assert.Equal(t, "MS-aaaa1111", rows[1][1])
	assert.Equal(t, "55", rows[1][12])
}

func TestRenderLogsCSV(t *testing.T) {
	logs := []models.DailyLog{
		{
			ID: "log-1", MilestoneID: "id-1",
			Date:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			Wages: 800, Materials: 300, Machinery: 150, Notes: "pour slab",
		},
	}

	records, err := csv.NewReader(bytes.NewReader(RenderLogsCSV(logs))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2026-03-05", records[1][2])
	assert.Equal(t, "1250.00", records[1][6]) // wages + materials + machinery
}

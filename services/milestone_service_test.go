package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epc-intel/models"
)

func TestPlanSummary(t *testing.T) {
	ms := models.Milestone{
		TotalCost:    50000,
		DeadlineDays: 30,
		Labourers:    models.LabourerList{{Name: "Masons", Count: 5, DailyRate: 120, Days: 30}},
		Materials:    models.MaterialList{{Name: "Cement", Quantity: 100, UnitCost: 10}},
		Machines:     models.MachineList{{Name: "Excavator", Count: 1, DailyRate: 500, Days: 5}},
	}

	plan := planSummary(ms)
	assert.Equal(t, 18000.0, plan.PlannedLabour)
	assert.Equal(t, 1000.0, plan.PlannedMaterial)
	assert.Equal(t, 2500.0, plan.PlannedMachine)
	assert.Equal(t, 21500.0, plan.PlannedTotal)
	assert.Equal(t, 28500.0, plan.Variance)
	assert.True(t, plan.WithinBudget)
}

func TestPlanSummaryOverCommitted(t *testing.T) {
	ms := models.Milestone{
		TotalCost: 10000,
		Labourers: models.LabourerList{{Name: "Crew", Count: 20, DailyRate: 150, Days: 10}},
	}

	plan := planSummary(ms)
	assert.Equal(t, -20000.0, plan.Variance)
	assert.False(t, plan.WithinBudget)
}

func TestValidateResources(t *testing.T) {
	cases := []struct {
		name      string
		labourers models.LabourerList
		materials models.MaterialList
		machines  models.MachineList
		wantErr   bool
	}{
		{"all empty", nil, nil, nil, false},
		{"valid lists",
			models.LabourerList{{Name: "Masons", Count: 5, DailyRate: 120, Days: 30}},
			models.MaterialList{{Name: "Cement", Quantity: 100, UnitCost: 10}},
			models.MachineList{{Name: "Crane", Count: 1, DailyRate: 900, Days: 5}},
			false},
		{"zero worker count",
			models.LabourerList{{Name: "Masons", Count: 0, DailyRate: 120, Days: 30}},
			nil, nil, true},
		{"negative rate",
			models.LabourerList{{Name: "Masons", Count: 5, DailyRate: -1, Days: 30}},
			nil, nil, true},
		{"negative quantity", nil,
			models.MaterialList{{Name: "Cement", Quantity: -5, UnitCost: 10}},
			nil, true},
		{"zero machine days", nil, nil,
			models.MachineList{{Name: "Crane", Count: 1, DailyRate: 900, Days: 0}},
			true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResources(tc.labourers, tc.materials, tc.machines)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

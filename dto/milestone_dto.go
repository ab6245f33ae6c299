package dto

import (
	"github.com/epc-intel/models"
)

// CreateMilestoneRequest represents the payload for creating a milestone
type CreateMilestoneRequest struct {
	Title        string              `json:"title" binding:"required"`
	StartDate    string              `json:"startDate"` // YYYY-MM-DD, defaults to today
	DeadlineDays int                 `json:"deadlineDays" binding:"required,min=1"`
	TotalCost    float64             `json:"totalCost" binding:"min=0"`
	Labourers    models.LabourerList `json:"labourers"`
	Materials    models.MaterialList `json:"materials"`
	Machines     models.MachineList  `json:"machines"`
}

// UpdateMilestoneRequest represents the payload for editing a milestone
type UpdateMilestoneRequest struct {
	Title        string              `json:"title" binding:"required"`
	StartDate    string              `json:"startDate"`
	DeadlineDays int                 `json:"deadlineDays" binding:"required,min=1"`
	TotalCost    float64             `json:"totalCost" binding:"min=0"`
	Labourers    models.LabourerList `json:"labourers"`
	Materials    models.MaterialList `json:"materials"`
	Machines     models.MachineList  `json:"machines"`
}

// PlanSummary compares a milestone's planned resource spend against its contract value
type PlanSummary struct {
	PlannedLabour   float64 `json:"plannedLabour"`
	PlannedMaterial float64 `json:"plannedMaterial"`
	PlannedMachine  float64 `json:"plannedMachine"`
	PlannedTotal    float64 `json:"plannedTotal"`
	Variance        float64 `json:"variance"` // contract value minus planned spend
	WithinBudget    bool    `json:"withinBudget"`
}

// CreateMilestoneResponse returns the stored milestone plus its plan-vs-contract summary
type CreateMilestoneResponse struct {
	Milestone models.Milestone `json:"milestone"`
	Plan      PlanSummary      `json:"plan"`
}

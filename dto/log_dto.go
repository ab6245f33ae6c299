package dto

import (
	"github.com/epc-intel/models"
)

// CreateLogRequest records one day of actual spend against a milestone
type CreateLogRequest struct {
	Date      string  `json:"date"` // YYYY-MM-DD, defaults to today
	Wages     float64 `json:"wages" binding:"min=0"`
	Materials float64 `json:"materials" binding:"min=0"`
	Machinery float64 `json:"machinery" binding:"min=0"`
	Notes     string  `json:"notes"`
}

// CreateLogResponse returns the stored entry with budget-pace feedback and the re-scored risk
type CreateLogResponse struct {
	Entry        models.DailyLog `json:"entry"`
	TotalToday   float64         `json:"totalToday"`
	BudgetPerDay float64         `json:"budgetPerDay"`
	OverBudget   bool            `json:"overBudget"`
	NewScore     int             `json:"newScore"`
	RiskLevel    string          `json:"riskLevel"`
	CashRunway   float64         `json:"cashRunway"`
}

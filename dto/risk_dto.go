package dto

import (
	"github.com/epc-intel/lib/risk"
	"github.com/epc-intel/models"
)

// LayerContribution is one layer's share of the composite risk score
type LayerContribution struct {
	Layer        string  `json:"layer"`
	Value        float64 `json:"value"`        // the layer's normalized value
	Weight       float64 `json:"weight"`       // its composite weight
	Contribution float64 `json:"contribution"` // value x weight x 100, in score points
}

// ResourceCostItem is one resource row with its derived total cost
type ResourceCostItem struct {
	Name      string  `json:"name"`
	Count     int     `json:"count,omitempty"`
	Quantity  float64 `json:"quantity,omitempty"`
	DailyRate float64 `json:"dailyRate,omitempty"`
	UnitCost  float64 `json:"unitCost,omitempty"`
	Days      int     `json:"days,omitempty"`
	TotalCost float64 `json:"totalCost"`
}

// SpendBreakdown splits spend to date by category, with the unspent remainder
type SpendBreakdown struct {
	Wages     float64 `json:"wages"`
	Materials float64 `json:"materials"`
	Machinery float64 `json:"machinery"`
	Remaining float64 `json:"remaining"`
}

// RiskDetailResponse is the full risk view of one milestone
type RiskDetailResponse struct {
	Milestone      models.Milestone    `json:"milestone"`
	AsOf           string              `json:"asOf"`
	ActualsSource  string              `json:"actualsSource"` // "logs" or "plan"
	Metrics        risk.Metrics        `json:"metrics"`
	RiskLevel      string              `json:"riskLevel"`
	RiskColor      string              `json:"riskColor"`
	Breakdown      []LayerContribution `json:"breakdown"`
	SpendBreakdown SpendBreakdown      `json:"spendBreakdown"`
	Labourers      []ResourceCostItem  `json:"labourers"`
	Materials      []ResourceCostItem  `json:"materials"`
	Machines       []ResourceCostItem  `json:"machines"`
	Advisories     []risk.Advisory     `json:"advisories"`
}

// ScheduleResponse is a milestone's derived day-by-day planned spend
type ScheduleResponse struct {
	MilestoneID string             `json:"milestoneId"`
	Rows        []risk.ScheduleRow `json:"rows"`
}

package dto

// RankedMilestone is one row of the dashboard risk matrix, highest score first
type RankedMilestone struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	StartDate     string  `json:"startDate"`
	DeadlineDays  int     `json:"deadlineDays"`
	DaysRemaining int     `json:"daysRemaining"`
	TotalCost     float64 `json:"totalCost"`
	TotalSpent    float64 `json:"totalSpent"`
	PoD           float64 `json:"pod"`
	CoDPerDay     float64 `json:"codPerDay"`
	CFTS          float64 `json:"cfts"`
	Score         int     `json:"score"`
	RiskLevel     string  `json:"riskLevel"`
	RiskColor     string  `json:"riskColor"`
}

// DashboardResponse carries the portfolio KPIs plus the ranked risk matrix
type DashboardResponse struct {
	AsOf           string            `json:"asOf"`
	MilestoneCount int               `json:"milestoneCount"`
	TotalBudget    float64           `json:"totalBudget"`
	TotalSpent     float64           `json:"totalSpent"`
	TotalRemaining float64           `json:"totalRemaining"`
	CriticalCount  int               `json:"criticalCount"` // score >= 70
	HighCount      int               `json:"highCount"`     // 45 <= score < 70
	AvgScore       float64           `json:"avgScore"`
	Milestones     []RankedMilestone `json:"milestones"`
}

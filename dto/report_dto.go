package dto

// RiskReportRow is one milestone's line in the exported risk report
type RiskReportRow struct {
	MilestoneID     string  `json:"milestoneId"`
	Code            string  `json:"code"`
	Title           string  `json:"title"`
	DeadlineDays    int     `json:"deadlineDays"`
	TotalBudget     float64 `json:"totalBudget"`
	TotalSpent      float64 `json:"totalSpent"`
	RemainingBudget float64 `json:"remainingBudget"`
	ProjectedTotal  float64 `json:"projectedTotal"`
	AvgDaily        float64 `json:"avgDaily"`
	PoD             float64 `json:"pod"`
	CoDPerDay       float64 `json:"codPerDay"`
	CFTS            float64 `json:"cfts"`
	Score           int     `json:"score"`
	RiskLevel       string  `json:"riskLevel"`
	BurnEfficiency  float64 `json:"burnEfficiency"`
	DaysOfCashLeft  float64 `json:"daysOfCashLeft"`
	DaysLogged      int     `json:"daysLogged"`
	TopAdvisory     string  `json:"topAdvisory"`
}

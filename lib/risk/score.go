package risk

import (
	"math"
	"time"

	"github.com/epc-intel/models"
)

// Layer weights of the composite score
const (
	weightPoD     = 0.40
	weightCoDNorm = 0.35
	weightCFTS    = 0.25
)

// Metrics is the full bundle of derived risk figures for one milestone.
// It is recomputed on every call and never persisted as source of truth.
type Metrics struct {
	Score           int     `json:"score"`          // composite 0-100
	PoD             float64 `json:"pod"`            // layer 1, probability of delay
	CoDPerDay       float64 `json:"codPerDay"`      // layer 2, daily cost of a slip
	CoDNorm         float64 `json:"codNorm"`        // layer 2 normalized against contract value
	CFTS            float64 `json:"cfts"`           // layer 3, cash-flow timing sensitivity
	AvgDaily        float64 `json:"avgDaily"`       // mean daily spend over the observation window
	TotalSpent      float64 `json:"totalSpent"`
	WagesSpent      float64 `json:"wagesSpent"`
	MaterialsSpent  float64 `json:"materialsSpent"`
	MachinerySpent  float64 `json:"machinerySpent"`
	ProjectedTotal  float64 `json:"projectedTotal"` // avg daily spend extrapolated over the full duration
	PctSpent        float64 `json:"pctSpent"`
	PctTime         float64 `json:"pctTime"`
	BurnEfficiency  float64 `json:"burnEfficiency"` // >1 means overspending relative to schedule
	DaysLogged      int     `json:"daysLogged"`
	DaysElapsed     int     `json:"daysElapsed"`
	DaysRemaining   int     `json:"daysRemaining"`
	DaysOfCashLeft  float64 `json:"daysOfCashLeft"` // runway at current burn rate
	RemainingBudget float64 `json:"remainingBudget"`
	NotStarted      bool    `json:"notStarted"` // no spend observations yet
}

// Score computes the metrics bundle for a milestone from its actual daily
// spend series as of the given date. It is deterministic for identical
// inputs and never fails: degenerate inputs (zero duration, zero budget, no
// observations) are handled with floor-1 denominators, capped ratios and an
// explicit not-started branch.
func Score(ms models.Milestone, actuals []DailySpend, asOf time.Time) Metrics {
	deadline := ms.DeadlineDays
	if deadline < 1 {
		deadline = 1
	}
	budgetFloor := math.Max(ms.TotalCost, 1)

	daysLogged := len(actuals)
	daysRemaining := DaysRemaining(ms, asOf)

	var avgDaily, totalSpent, wagesSpent, matSpent, machSpent, projectedTotal float64
	if daysLogged > 0 {
		for _, d := range actuals {
			totalSpent += d.Total
			wagesSpent += d.Wages
			matSpent += d.Materials
			machSpent += d.Machinery
		}
		avgDaily = totalSpent / float64(daysLogged)
		projectedTotal = avgDaily * float64(deadline)
	} else {
		// No observations yet: assume on-budget pace.
		avgDaily = ms.TotalCost / float64(deadline)
		projectedTotal = ms.TotalCost
	}

	// Layer 1 - probability of delay. Budget pressure is capped at 2x so
	// extreme overruns stay bounded; the composite never reaches certainty.
	budgetPressure := math.Min(projectedTotal/budgetFloor, 2.0)
	pctTime := math.Min(float64(daysLogged)/float64(deadline), 1.0)
	urgency := 0.0
	switch {
	case daysRemaining <= 7:
		urgency = 0.35
	case daysRemaining <= 14:
		urgency = 0.15
	}
	pod := math.Min(0.95, budgetPressure*0.35+pctTime*0.20+urgency)
	if daysLogged == 0 {
		// Budget and time terms carry no information before the first
		// observation; only deadline proximity remains.
		pod = urgency
	}

	// Layer 2 - cost of delay, normalized against the contract value.
	codPerDay := avgDaily
	codNorm := 0.0
	if daysLogged > 0 {
		codNorm = math.Min(codPerDay*float64(deadline)/budgetFloor, 1.0)
	}

	// Layer 3 - cash-flow timing sensitivity.
	cfts := CashFlowSensitivity(daysRemaining)

	raw := (pod*weightPoD + codNorm*weightCoDNorm + cfts*weightCFTS) * 100
	score := int(math.Round(math.Min(100, raw)))

	pctSpent := totalSpent / budgetFloor
	burnEfficiency := 1.0
	if pctTime > 0.05 {
		burnEfficiency = pctSpent / pctTime
	}
	remainingBudget := math.Max(ms.TotalCost-totalSpent, 0)
	daysOfCashLeft := float64(daysRemaining)
	if avgDaily > 0 {
		daysOfCashLeft = remainingBudget / avgDaily
	}

	return Metrics{
		Score:           score,
		PoD:             round3(pod),
		CoDPerDay:       round2(codPerDay),
		CoDNorm:         round3(codNorm),
		CFTS:            round2(cfts),
		AvgDaily:        round2(avgDaily),
		TotalSpent:      round2(totalSpent),
		WagesSpent:      round2(wagesSpent),
		MaterialsSpent:  round2(matSpent),
		MachinerySpent:  round2(machSpent),
		ProjectedTotal:  round2(projectedTotal),
		PctSpent:        round4(pctSpent),
		PctTime:         round4(pctTime),
		BurnEfficiency:  round3(burnEfficiency),
		DaysLogged:      daysLogged,
		DaysElapsed:     DaysElapsed(ms, asOf),
		DaysRemaining:   daysRemaining,
		DaysOfCashLeft:  round1(daysOfCashLeft),
		RemainingBudget: round2(remainingBudget),
		NotStarted:      daysLogged == 0,
	}
}

// CashFlowSensitivity is the layer-3 step function of days remaining.
// It is non-increasing: the closer the cash-flow trigger, the higher it steps.
func CashFlowSensitivity(daysRemaining int) float64 {
	switch {
	case daysRemaining <= 3:
		return 1.00
	case daysRemaining <= 7:
		return 0.85
	case daysRemaining <= 14:
		return 0.65
	case daysRemaining <= 30:
		return 0.40
	default:
		return 0.20
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

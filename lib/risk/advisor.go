package risk

import (
	"fmt"
	"math"
	"strings"

	"github.com/epc-intel/models"
)

// Severity classifies an advisory message
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Advisory is one tagged, severity-classified message about a milestone
type Advisory struct {
	Tag      string   `json:"tag"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Suggestions evaluates the fixed advisory rule sequence against a milestone
// and its metrics bundle. Rules are independent and non-exclusive; the
// returned order is the presentation/priority order. The on-track fallback
// fires only when no other rule did.
func Suggestions(ms models.Milestone, m Metrics) []Advisory {
	var advisories []Advisory
	be := m.BurnEfficiency

	if be > 1.40 {
		advisories = append(advisories, Advisory{
			Tag:      "OVERSPEND",
			Severity: SeverityError,
			Message: fmt.Sprintf("Burning %d%% faster than schedule. Immediate review of labour allocation and machinery hours required.",
				roundPct(be-1)),
		})
	} else if be > 1.20 {
		advisories = append(advisories, Advisory{
			Tag:      "PACE RISK",
			Severity: SeverityWarning,
			Message: fmt.Sprintf("Spend pace %d%% above plan. Verify that physical progress matches expenditure.",
				roundPct(be-1)),
		})
	}

	if be < 0.60 && m.PctTime > 0.20 {
		advisories = append(advisories, Advisory{
			Tag:      "SLOW BURN",
			Severity: SeverityInfo,
			Message: fmt.Sprintf("Only %d%% of budget used at %d%% of timeline. Confirm physical progress - risk of back-loaded cost surge.",
				roundPct(m.PctSpent), roundPct(m.PctTime)),
		})
	}

	if m.DaysRemaining <= 7 && m.PoD > 0.35 {
		advisories = append(advisories, Advisory{
			Tag:      "DEADLINE CRITICAL",
			Severity: SeverityError,
			Message: fmt.Sprintf("Deadline in %d days with %d%% delay probability. Trigger resource surge and escalate to senior PM.",
				m.DaysRemaining, roundPct(m.PoD)),
		})
	}

	if len(ms.Labourers) > 0 {
		labourCost := LabourCost(ms.Labourers)
		if labourCost > ms.TotalCost*0.60 {
			workers := 0
			for _, l := range ms.Labourers {
				workers += l.Count
			}
			advisories = append(advisories, Advisory{
				Tag:      "LABOUR OPTIMISE",
				Severity: SeverityWarning,
				Message: fmt.Sprintf("Labour = %d%% of budget. Audit utilisation of all %d workers; redeploy idle staff to critical-path activities.",
					roundPct(labourCost/math.Max(ms.TotalCost, 1)), workers),
			})
		}
	}

	if len(ms.Machines) > 0 && be > 1.05 {
		names := make([]string, 0, 2)
		for _, mc := range ms.Machines {
			names = append(names, mc.Name)
			if len(names) == 2 {
				break
			}
		}
		advisories = append(advisories, Advisory{
			Tag:      "MACHINERY SAVINGS",
			Severity: SeverityInfo,
			Message: fmt.Sprintf("Machinery costs elevated. Shift %s to off-peak hours or consider returning idle units to reduce rental spend.",
				strings.Join(names, ", ")),
		})
	}

	if len(ms.Materials) > 0 && m.MaterialsSpent > ms.TotalCost*0.40 {
		advisories = append(advisories, Advisory{
			Tag:      "MATERIAL REVIEW",
			Severity: SeverityWarning,
			Message:  "Material spend is high relative to total budget. Review procurement schedule - avoid over-ordering to maintain cash buffer.",
		})
	}

	if m.DaysOfCashLeft < 10 {
		advisories = append(advisories, Advisory{
			Tag:      "CASH ALERT",
			Severity: SeverityError,
			Message: fmt.Sprintf("Only %.1f days of cash runway remaining at current burn rate. Activate overdraft facility or accelerate billing trigger.",
				m.DaysOfCashLeft),
		})
	}

	if m.ProjectedTotal > ms.TotalCost*1.10 {
		advisories = append(advisories, Advisory{
			Tag:      "BUDGET OVERRUN",
			Severity: SeverityError,
			Message: fmt.Sprintf("Projected to exceed budget by %d%%. Renegotiate scope or reduce resource intensity immediately.",
				roundPct(m.ProjectedTotal/math.Max(ms.TotalCost, 1)-1)),
		})
	}

	if len(advisories) == 0 {
		advisories = append(advisories, Advisory{
			Tag:      "ON TRACK",
			Severity: SeveritySuccess,
			Message:  "Milestone is within budget and timeline. Maintain current execution pace.",
		})
	}

	return advisories
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}

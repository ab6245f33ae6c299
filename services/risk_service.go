package services

import (
	"fmt"
	"math"
	"time"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/lib/risk"
	"github.com/epc-intel/models"
	"github.com/epc-intel/repositories"
	"github.com/epc-intel/utils"
)

// RiskService computes risk views over milestones. All scoring goes through
// lib/risk with an explicit as-of date; this service only loads snapshots
// and shapes responses.
type RiskService struct {
	milestoneRepo *repositories.MilestoneRepository
	logRepo       *repositories.DailyLogRepository
}

// NewRiskService creates a new risk service instance
func NewRiskService() *RiskService {
	return &RiskService{
		milestoneRepo: repositories.NewMilestoneRepository(),
		logRepo:       repositories.NewDailyLogRepository(),
	}
}

// scoreWithSource scores a milestone from its preferred actuals source:
// recorded daily logs when any exist, otherwise the plan-derived series.
func scoreWithSource(ms models.Milestone, logs []models.DailyLog, asOf time.Time) (risk.Metrics, string) {
	var source risk.ActualsSource = risk.LogBook{Entries: logs}
	sourceName := "logs"
	if len(logs) == 0 {
		source = risk.PlanFollower{}
		sourceName = "plan"
	}
	return risk.Score(ms, source.Actuals(ms, asOf), asOf), sourceName
}

// MilestoneRisk builds the full risk view for one milestone as of a date
func (s *RiskService) MilestoneRisk(id string, userID string, isAdmin bool, asOf string) (dto.RiskDetailResponse, error) {
	asOfDate, err := asOfOrToday(asOf)
	if err != nil {
		return dto.RiskDetailResponse{}, err
	}

	milestone, err := s.milestoneRepo.FindByID(id)
	if err != nil {
		return dto.RiskDetailResponse{}, err
	}

	if !isAdmin && milestone.UserID != userID {
		return dto.RiskDetailResponse{}, fmt.Errorf("unauthorized: you don't have permission to access this milestone")
	}

	logs, err := s.logRepo.FindByMilestoneID(id)
	if err != nil {
		return dto.RiskDetailResponse{}, err
	}

	metrics, sourceName := scoreWithSource(milestone, logs, asOfDate)

	return dto.RiskDetailResponse{
		Milestone:      milestone,
		AsOf:           utils.FormatDate(asOfDate),
		ActualsSource:  sourceName,
		Metrics:        metrics,
		RiskLevel:      risk.RiskLabel(metrics.Score),
		RiskColor:      risk.RiskColor(metrics.Score),
		Breakdown:      layerBreakdown(metrics),
		SpendBreakdown: spendBreakdown(metrics),
		Labourers:      labourerItems(milestone.Labourers),
		Materials:      materialItems(milestone.Materials),
		Machines:       machineItems(milestone.Machines),
		Advisories:     risk.Suggestions(milestone, metrics),
	}, nil
}

// layerBreakdown converts the three layer values into score-point contributions
func layerBreakdown(m risk.Metrics) []dto.LayerContribution {
	round1 := func(v float64) float64 { return math.Round(v*10) / 10 }
	return []dto.LayerContribution{
		{Layer: "Probability of Delay", Value: m.PoD, Weight: 0.40, Contribution: round1(m.PoD * 0.40 * 100)},
		{Layer: "Cost of Delay", Value: m.CoDNorm, Weight: 0.35, Contribution: round1(m.CoDNorm * 0.35 * 100)},
		{Layer: "Cash-Flow Timing Sensitivity", Value: m.CFTS, Weight: 0.25, Contribution: round1(m.CFTS * 0.25 * 100)},
	}
}

func spendBreakdown(m risk.Metrics) dto.SpendBreakdown {
	return dto.SpendBreakdown{
		Wages:     m.WagesSpent,
		Materials: m.MaterialsSpent,
		Machinery: m.MachinerySpent,
		Remaining: m.RemainingBudget,
	}
}

func labourerItems(labourers models.LabourerList) []dto.ResourceCostItem {
	items := make([]dto.ResourceCostItem, 0, len(labourers))
	for _, l := range labourers {
		items = append(items, dto.ResourceCostItem{
			Name:      l.Name,
			Count:     l.Count,
			DailyRate: l.DailyRate,
			Days:      l.Days,
			TotalCost: float64(l.Count) * l.DailyRate * float64(l.Days),
		})
	}
	return items
}

func materialItems(materials models.MaterialList) []dto.ResourceCostItem {
	items := make([]dto.ResourceCostItem, 0, len(materials))
	for _, m := range materials {
		items = append(items, dto.ResourceCostItem{
			Name:      m.Name,
			Quantity:  m.Quantity,
			UnitCost:  m.UnitCost,
			TotalCost: m.Quantity * m.UnitCost,
		})
	}
	return items
}

func machineItems(machines models.MachineList) []dto.ResourceCostItem {
	items := make([]dto.ResourceCostItem, 0, len(machines))
	for _, m := range machines {
		items = append(items, dto.ResourceCostItem{
			Name:      m.Name,
			Count:     m.Count,
			DailyRate: m.DailyRate,
			Days:      m.Days,
			TotalCost: float64(m.Count) * m.DailyRate * float64(m.Days),
		})
	}
	return items
}

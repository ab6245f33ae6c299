package services

import (
	"math"
	"sort"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/lib/risk"
	"github.com/epc-intel/repositories"
	"github.com/epc-intel/utils"
)

// DashboardService aggregates portfolio-level risk figures
type DashboardService struct {
	milestoneRepo *repositories.MilestoneRepository
	logRepo       *repositories.DailyLogRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService() *DashboardService {
	return &DashboardService{
		milestoneRepo: repositories.NewMilestoneRepository(),
		logRepo:       repositories.NewDailyLogRepository(),
	}
}

// Portfolio scores every visible milestone as of a date and returns the
// portfolio KPIs plus the risk matrix ranked by score, highest first
func (s *DashboardService) Portfolio(userID string, isAdmin bool, asOf string) (dto.DashboardResponse, error) {
	asOfDate, err := asOfOrToday(asOf)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	milestones, err := s.milestoneRepo.FindAll(userID, isAdmin)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := dto.DashboardResponse{
		AsOf:           utils.FormatDate(asOfDate),
		MilestoneCount: len(milestones),
		Milestones:     make([]dto.RankedMilestone, 0, len(milestones)),
	}

	var scoreSum float64
	for _, ms := range milestones {
		logs, err := s.logRepo.FindByMilestoneID(ms.ID)
		if err != nil {
			return dto.DashboardResponse{}, err
		}

		metrics, _ := scoreWithSource(ms, logs, asOfDate)

		response.TotalBudget += ms.TotalCost
		response.TotalSpent += metrics.TotalSpent
		response.TotalRemaining += metrics.RemainingBudget
		scoreSum += float64(metrics.Score)

		switch {
		case metrics.Score >= 70:
			response.CriticalCount++
		case metrics.Score >= 45:
			response.HighCount++
		}

		response.Milestones = append(response.Milestones, dto.RankedMilestone{
			ID:            ms.ID,
			Code:          ms.Code,
			Title:         ms.Title,
			StartDate:     utils.FormatDate(ms.StartDate),
			DeadlineDays:  ms.DeadlineDays,
			DaysRemaining: metrics.DaysRemaining,
			TotalCost:     ms.TotalCost,
			TotalSpent:    metrics.TotalSpent,
			PoD:           metrics.PoD,
			CoDPerDay:     metrics.CoDPerDay,
			CFTS:          metrics.CFTS,
			Score:         metrics.Score,
			RiskLevel:     risk.RiskLabel(metrics.Score),
			RiskColor:     risk.RiskColor(metrics.Score),
		})
	}

	sort.SliceStable(response.Milestones, func(i, j int) bool {
		return response.Milestones[i].Score > response.Milestones[j].Score
	})

	if len(milestones) > 0 {
		response.AvgScore = math.Round(scoreSum/float64(len(milestones))*10) / 10
	}

	return response, nil
}

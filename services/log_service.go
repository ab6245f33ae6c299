package services

import (
	"fmt"
	"math"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/lib/risk"
	"github.com/epc-intel/models"
	"github.com/epc-intel/repositories"
	"github.com/epc-intel/utils"
)

// LogService handles business logic for daily spend logs
type LogService struct {
	milestoneRepo *repositories.MilestoneRepository
	logRepo       *repositories.DailyLogRepository
}

// NewLogService creates a new log service instance
func NewLogService() *LogService {
	return &LogService{
		milestoneRepo: repositories.NewMilestoneRepository(),
		logRepo:       repositories.NewDailyLogRepository(),
	}
}

// AddLog records one day of actual spend against a milestone and returns
// budget-pace feedback plus the re-scored risk
func (s *LogService) AddLog(milestoneID string, req dto.CreateLogRequest, userID string, isAdmin bool) (dto.CreateLogResponse, error) {
	milestone, err := s.milestoneRepo.FindByID(milestoneID)
	if err != nil {
		return dto.CreateLogResponse{}, err
	}

	if !isAdmin && milestone.UserID != userID {
		return dto.CreateLogResponse{}, fmt.Errorf("unauthorized: you don't have permission to log against this milestone")
	}

	logDate := utils.Today()
	if req.Date != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			return dto.CreateLogResponse{}, err
		}
		logDate = parsed
	}

	entry := models.DailyLog{
		MilestoneID: milestone.ID,
		Date:        logDate,
		Wages:       req.Wages,
		Materials:   req.Materials,
		Machinery:   req.Machinery,
		Notes:       req.Notes,
	}

	entry, err = s.logRepo.Create(entry)
	if err != nil {
		return dto.CreateLogResponse{}, err
	}

	// Re-score with the new entry included
	logs, err := s.logRepo.FindByMilestoneID(milestone.ID)
	if err != nil {
		return dto.CreateLogResponse{}, err
	}
	metrics, _ := scoreWithSource(milestone, logs, utils.Today())

	deadline := milestone.DeadlineDays
	if deadline < 1 {
		deadline = 1
	}
	budgetPerDay := math.Round(milestone.TotalCost/float64(deadline)*100) / 100
	totalToday := entry.Total()

	return dto.CreateLogResponse{
		Entry:        entry,
		TotalToday:   totalToday,
		BudgetPerDay: budgetPerDay,
		OverBudget:   totalToday > budgetPerDay,
		NewScore:     metrics.Score,
		RiskLevel:    risk.RiskLabel(metrics.Score),
		CashRunway:   metrics.DaysOfCashLeft,
	}, nil
}

// ListLogs retrieves all logs for a milestone, oldest first
func (s *LogService) ListLogs(milestoneID string, userID string, isAdmin bool) ([]models.DailyLog, error) {
	milestone, err := s.milestoneRepo.FindByID(milestoneID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && milestone.UserID != userID {
		return nil, fmt.Errorf("unauthorized: you don't have permission to access this milestone")
	}

	return s.logRepo.FindByMilestoneID(milestoneID)
}

// DeleteLog removes a single log entry
func (s *LogService) DeleteLog(logID string, userID string, isAdmin bool) error {
	entry, err := s.logRepo.FindByID(logID)
	if err != nil {
		return err
	}

	if !isAdmin {
		owner, err := s.milestoneRepo.GetOwnerID(entry.MilestoneID)
		if err != nil {
			return err
		}
		if owner != userID {
			return fmt.Errorf("unauthorized: you don't have permission to delete this log entry")
		}
	}

	return s.logRepo.Delete(logID)
}

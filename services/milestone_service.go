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

// MilestoneService handles business logic for milestones
type MilestoneService struct {
	milestoneRepo *repositories.MilestoneRepository
	logRepo       *repositories.DailyLogRepository
}

// NewMilestoneService creates a new milestone service instance
func NewMilestoneService() *MilestoneService {
	return &MilestoneService{
		milestoneRepo: repositories.NewMilestoneRepository(),
		logRepo:       repositories.NewDailyLogRepository(),
	}
}

// ListMilestones retrieves the caller's milestones (all of them for admins)
func (s *MilestoneService) ListMilestones(userID string, isAdmin bool) ([]models.Milestone, error) {
	return s.milestoneRepo.FindAll(userID, isAdmin)
}

// CreateMilestone validates and stores a new milestone and returns it with
// its plan-vs-contract variance summary
func (s *MilestoneService) CreateMilestone(req dto.CreateMilestoneRequest, userID string) (dto.CreateMilestoneResponse, error) {
	startDate := utils.Today()
	if req.StartDate != "" {
		parsed, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return dto.CreateMilestoneResponse{}, err
		}
		startDate = parsed
	}

	if err := validateResources(req.Labourers, req.Materials, req.Machines); err != nil {
		return dto.CreateMilestoneResponse{}, err
	}

	milestone := models.Milestone{
		Code:         utils.GenerateMilestoneCode(),
		Title:        req.Title,
		StartDate:    startDate,
		DeadlineDays: req.DeadlineDays,
		TotalCost:    req.TotalCost,
		Labourers:    orEmptyLabourers(req.Labourers),
		Materials:    orEmptyMaterials(req.Materials),
		Machines:     orEmptyMachines(req.Machines),
		UserID:       userID,
	}

	milestone, err := s.milestoneRepo.Create(milestone)
	if err != nil {
		return dto.CreateMilestoneResponse{}, err
	}

	return dto.CreateMilestoneResponse{
		Milestone: milestone,
		Plan:      planSummary(milestone),
	}, nil
}

// GetMilestone retrieves a milestone by ID with access control
func (s *MilestoneService) GetMilestone(id string, userID string, isAdmin bool) (models.Milestone, error) {
	milestone, err := s.milestoneRepo.FindByID(id)
	if err != nil {
		return models.Milestone{}, err
	}

	if !isAdmin && milestone.UserID != userID {
		return models.Milestone{}, fmt.Errorf("unauthorized: you don't have permission to access this milestone")
	}

	return milestone, nil
}

// UpdateMilestone edits a milestone. The duration may not be shortened below
// the days already elapsed as of today.
func (s *MilestoneService) UpdateMilestone(id string, req dto.UpdateMilestoneRequest, userID string, isAdmin bool) (models.Milestone, error) {
	existing, err := s.GetMilestone(id, userID, isAdmin)
	if err != nil {
		return models.Milestone{}, err
	}

	startDate := existing.StartDate
	if req.StartDate != "" {
		parsed, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return models.Milestone{}, err
		}
		startDate = parsed
	}

	if err := validateResources(req.Labourers, req.Materials, req.Machines); err != nil {
		return models.Milestone{}, err
	}

	elapsed := risk.DaysElapsed(existing, utils.Today())
	if req.DeadlineDays < elapsed {
		return models.Milestone{}, fmt.Errorf("deadline cannot be shortened below the %d days already elapsed", elapsed)
	}

	existing.Title = req.Title
	existing.StartDate = startDate
	existing.DeadlineDays = req.DeadlineDays
	existing.TotalCost = req.TotalCost
	existing.Labourers = orEmptyLabourers(req.Labourers)
	existing.Materials = orEmptyMaterials(req.Materials)
	existing.Machines = orEmptyMachines(req.Machines)

	if err := s.milestoneRepo.Update(existing); err != nil {
		return models.Milestone{}, err
	}

	return existing, nil
}

// DeleteMilestone removes a milestone and cascades the delete to its logs
func (s *MilestoneService) DeleteMilestone(id string, userID string, isAdmin bool) error {
	exists, err := s.milestoneRepo.Exists(id)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("milestone not found or already deleted")
	}

	if !isAdmin {
		owner, err := s.milestoneRepo.GetOwnerID(id)
		if err != nil {
			return err
		}

		if owner != userID {
			return fmt.Errorf("unauthorized: you don't have permission to delete this milestone")
		}
	}

	return s.milestoneRepo.Delete(id)
}

// MilestoneSchedule returns a milestone's derived day-by-day planned spend
func (s *MilestoneService) MilestoneSchedule(id string, userID string, isAdmin bool) (dto.ScheduleResponse, error) {
	milestone, err := s.GetMilestone(id, userID, isAdmin)
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	return dto.ScheduleResponse{
		MilestoneID: milestone.ID,
		Rows:        risk.PlannedSchedule(milestone),
	}, nil
}

// planSummary compares planned resource spend against the contract value
func planSummary(ms models.Milestone) dto.PlanSummary {
	labour := risk.LabourCost(ms.Labourers)
	material := risk.MaterialCost(ms.Materials)
	machine := risk.MachineCost(ms.Machines)
	total := labour + material + machine
	variance := ms.TotalCost - total

	return dto.PlanSummary{
		PlannedLabour:   labour,
		PlannedMaterial: material,
		PlannedMachine:  machine,
		PlannedTotal:    total,
		Variance:        variance,
		WithinBudget:    variance >= 0,
	}
}

// validateResources enforces the resource entry bounds at the edit boundary,
// before anything reaches the scoring engine
func validateResources(labourers models.LabourerList, materials models.MaterialList, machines models.MachineList) error {
	for _, l := range labourers {
		if l.Count < 1 || l.Days < 1 || l.DailyRate < 0 || math.IsNaN(l.DailyRate) {
			return fmt.Errorf("labourer %q: count and days must be >= 1, daily rate >= 0", l.Name)
		}
	}
	for _, m := range materials {
		if m.Quantity < 0 || m.UnitCost < 0 {
			return fmt.Errorf("material %q: quantity and unit cost must be >= 0", m.Name)
		}
	}
	for _, m := range machines {
		if m.Count < 1 || m.Days < 1 || m.DailyRate < 0 {
			return fmt.Errorf("machine %q: count and days must be >= 1, daily rate >= 0", m.Name)
		}
	}
	return nil
}

func orEmptyLabourers(l models.LabourerList) models.LabourerList {
	if l == nil {
		return models.LabourerList{}
	}
	return l
}

func orEmptyMaterials(m models.MaterialList) models.MaterialList {
	if m == nil {
		return models.MaterialList{}
	}
	return m
}

func orEmptyMachines(m models.MachineList) models.MachineList {
	if m == nil {
		return models.MachineList{}
	}
	return m
}

// asOfOrToday resolves an optional YYYY-MM-DD as-of parameter, defaulting to
// the current date. Scoring itself never reads the wall clock.
func asOfOrToday(asOf string) (time.Time, error) {
	if asOf == "" {
		return utils.Today(), nil
	}
	return utils.ParseDate(asOf)
}

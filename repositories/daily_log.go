package repositories

import (
	"github.com/epc-intel/database"
	"github.com/epc-intel/models"
)

// DailyLogRepository handles database operations for daily spend logs
type DailyLogRepository struct{}

// NewDailyLogRepository creates a new daily log repository instance
func NewDailyLogRepository() *DailyLogRepository {
	return &DailyLogRepository{}
}

// FindByMilestoneID retrieves all logs for a milestone ordered by date
func (r *DailyLogRepository) FindByMilestoneID(milestoneID string) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	result := database.DB.Where("milestone_id = ?", milestoneID).Order("date asc").Find(&logs)
	return logs, result.Error
}

// FindByID retrieves a log entry by its ID
func (r *DailyLogRepository) FindByID(id string) (models.DailyLog, error) {
	var entry models.DailyLog
	result := database.DB.First(&entry, "id = ?", id)
	return entry, result.Error
}

// FindForUser retrieves all log entries across a user's milestones, ordered
// by milestone then date. Admins see every entry.
func (r *DailyLogRepository) FindForUser(userID string, isAdmin bool) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	db := database.DB.Order("milestone_id asc, date asc")
	if !isAdmin {
		db = db.Joins("JOIN milestones ON milestones.id = daily_logs.milestone_id").
			Where("milestones.user_id = ?", userID)
	}
	result := db.Find(&logs)
	return logs, result.Error
}

// Create inserts a new log entry into the database
func (r *DailyLogRepository) Create(entry models.DailyLog) (models.DailyLog, error) {
	result := database.DB.Create(&entry)
	return entry, result.Error
}

// Delete removes a log entry (soft delete)
func (r *DailyLogRepository) Delete(id string) error {
	result := database.DB.Delete(&models.DailyLog{}, "id = ?", id)
	return result.Error
}

// CountByMilestoneID counts logs recorded against a milestone
func (r *DailyLogRepository) CountByMilestoneID(milestoneID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.DailyLog{}).Where("milestone_id = ?", milestoneID).Count(&count)
	return count, result.Error
}

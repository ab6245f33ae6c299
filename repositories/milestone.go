package repositories

import (
	"github.com/epc-intel/database"
	"github.com/epc-intel/models"
	"gorm.io/gorm"
)

// MilestoneRepository handles database operations for milestones
type MilestoneRepository struct{}

// NewMilestoneRepository creates a new milestone repository instance
func NewMilestoneRepository() *MilestoneRepository {
	return &MilestoneRepository{}
}

// FindAll retrieves all milestones, scoped to a user unless admin
func (r *MilestoneRepository) FindAll(userID string, isAdmin bool) ([]models.Milestone, error) {
	var milestones []models.Milestone
	db := database.DB.Order("created_at asc")
	if !isAdmin {
		db = db.Where("user_id = ?", userID)
	}
	result := db.Find(&milestones)
	return milestones, result.Error
}

// FindByID retrieves a milestone by its ID
func (r *MilestoneRepository) FindByID(id string) (models.Milestone, error) {
	var milestone models.Milestone
	result := database.DB.First(&milestone, "id = ?", id)
	return milestone, result.Error
}

// WithLogs loads a milestone together with its daily logs ordered by date
func (r *MilestoneRepository) WithLogs(id string) (models.Milestone, error) {
	var milestone models.Milestone
	result := database.DB.
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("date asc") }).
		First(&milestone, "id = ?", id)
	return milestone, result.Error
}

// Create inserts a new milestone into the database
func (r *MilestoneRepository) Create(milestone models.Milestone) (models.Milestone, error) {
	result := database.DB.Create(&milestone)
	return milestone, result.Error
}

// Update modifies an existing milestone
func (r *MilestoneRepository) Update(milestone models.Milestone) error {
	result := database.DB.Save(&milestone)
	return result.Error
}

// Delete removes a milestone and its daily logs (soft delete)
func (r *MilestoneRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		// Cascade the soft delete to the milestone's logs first
		if err := tx.Where("milestone_id = ?", id).Delete(&models.DailyLog{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Milestone{}, "id = ?", id)
		return result.Error
	})
}

// Exists checks if a milestone exists (including soft-deleted ones)
func (r *MilestoneRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Unscoped().Model(&models.Milestone{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetOwnerID returns the user ID who owns the milestone
func (r *MilestoneRepository) GetOwnerID(id string) (string, error) {
	type MilestoneOwner struct {
		UserID string
	}

	var owner MilestoneOwner
	err := database.DB.Unscoped().Model(&models.Milestone{}).Select("user_id").Where("id = ?", id).First(&owner).Error
	return owner.UserID, err
}

// CountByUserID counts milestones belonging to a user
func (r *MilestoneRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Milestone{}).Where("user_id = ?", userID).Count(&count)
	return count, result.Error
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLog is one manually recorded actual-spend observation for a milestone on one date
type DailyLog struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MilestoneID string    `json:"milestoneId" gorm:"type:uuid;not null;index"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Wages       float64   `json:"wages" gorm:"not null;default:0"`
	Materials   float64   `json:"materials" gorm:"not null;default:0"`
	Machinery   float64   `json:"machinery" gorm:"not null;default:0"`
	Notes       string    `json:"notes" gorm:"default:null"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Milestone Milestone `json:"milestone,omitempty" gorm:"foreignKey:MilestoneID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the primary key when the caller did not
func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Total returns the combined spend recorded for the day
func (l DailyLog) Total() float64 {
	return l.Wages + l.Materials + l.Machinery
}

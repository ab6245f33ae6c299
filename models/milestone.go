package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Labourer is one labour category hired for the first Days days of a milestone
type Labourer struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	DailyRate float64 `json:"dailyRate"`
	Days      int     `json:"days"`
}

// Material is a consumable with no time profile; its cost is spread over the full duration
type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
}

// Machine is rented equipment active for the first Days days of a milestone
type Machine struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	DailyRate float64 `json:"dailyRate"`
	Days      int     `json:"days"`
}

// LabourerList custom type for JSONB storage
type LabourerList []Labourer

func (l LabourerList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LabourerList) Scan(value interface{}) error {
	if value == nil {
		*l = LabourerList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, l)
}

// MaterialList custom type for JSONB storage
type MaterialList []Material

func (m MaterialList) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MaterialList) Scan(value interface{}) error {
	if value == nil {
		*m = MaterialList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, m)
}

// MachineList custom type for JSONB storage
type MachineList []Machine

func (m MachineList) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MachineList) Scan(value interface{}) error {
	if value == nil {
		*m = MachineList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, m)
}

// Milestone represents a budgeted, time-boxed unit of contracted work
type Milestone struct {
	ID           string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code         string       `json:"code" gorm:"uniqueIndex;not null"` // human-readable reference, e.g. MS-x7k9m2p1
	Title        string       `json:"title" gorm:"not null"`
	StartDate    time.Time    `json:"startDate" gorm:"type:date;not null"`
	DeadlineDays int          `json:"deadlineDays" gorm:"not null"` // total planned duration in days, >= 1
	TotalCost    float64      `json:"totalCost" gorm:"not null"`    // contract budget
	Labourers    LabourerList `json:"labourers" gorm:"type:jsonb;default:'[]'"`
	Materials    MaterialList `json:"materials" gorm:"type:jsonb;default:'[]'"`
	Machines     MachineList  `json:"machines" gorm:"type:jsonb;default:'[]'"`
	UserID       string       `json:"userId" gorm:"type:uuid;not null;index"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Logs []DailyLog `json:"logs,omitempty" gorm:"foreignKey:MilestoneID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the primary key when the caller did not
func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability labels shown on doctor cards. The set is open-ended and is not
// derived from bookings.
const (
	AvailabilityAvailableToday = "Available Today"
	AvailabilityFullyBooked    = "Fully Booked"
	AvailabilityOnLeave        = "On Leave"
)

// Doctor represents a directory entry for a healthcare provider
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Availability   string    `gorm:"type:varchar(50)" json:"availability"`
	Experience     string    `gorm:"type:varchar(50)" json:"experience"`
	Image          string    `gorm:"type:text" json:"image,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// BeforeCreate assigns an identifier when the caller did not
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// IsFullyBooked reports whether the availability label blocks booking
func (d *Doctor) IsFullyBooked() bool {
	return d.Availability == AvailabilityFullyBooked
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment represents a patient booking against a doctor.
// DoctorID is a plain reference: no foreign key is enforced, so Doctor may stay
// nil after preloading when the referenced doctor does not exist.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientName string    `gorm:"type:varchar(255);not null" json:"patient_name"`
	Date        string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Time        string    `gorm:"type:varchar(8);not null" json:"time"`
	Reason      string    `gorm:"type:text;not null" json:"reason"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// HasContact reports whether the patient left a phone number or email
func (a *Appointment) HasContact() bool {
	return a.Phone != "" || a.Email != ""
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service types accepted for an appointment.
const (
	ServiceConsulta = "Consulta"
	ServiceExame    = "Exame"
)

// Appointment is a booking owned exclusively by the user who created it.
// Every query against this table must carry a user_id predicate.
type Appointment struct {
	ID              string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID          string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	HospitalID      string    `json:"hospitalId" gorm:"type:varchar(36);not null"`
	SpecialtyID     string    `json:"specialtyId" gorm:"type:varchar(36);not null"`
	ServiceType     string    `json:"serviceType" gorm:"not null"`
	PatientName     string    `json:"patientName" gorm:"not null"`
	PatientCPF      string    `json:"patientCPF" gorm:"column:patient_cpf;not null"`
	PatientBirth    string    `json:"patientBirth" gorm:"not null"`
	PatientPhone    string    `json:"patientPhone" gorm:"not null"`
	AppointmentDate time.Time `json:"appointmentDate" gorm:"not null"`
	AppointmentTime string    `json:"appointmentTime" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt"`

	User      *User      `json:"-" gorm:"foreignKey:UserID"`
	Hospital  *Hospital  `json:"-" gorm:"foreignKey:HospitalID"`
	Specialty *Specialty `json:"-" gorm:"foreignKey:SpecialtyID"`
}

// BeforeCreate assigns a UUID before inserting.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

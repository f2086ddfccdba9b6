package models

import "time"

// ===============================
// Appointment types
// ===============================

const (
	AppointmentTypeConsultation = "consultation"
	AppointmentTypeFollowUp     = "follow_up"
	AppointmentTypeCheckUp      = "check_up"
	AppointmentTypeUrgent       = "urgent"
	AppointmentTypeVideoCall    = "video_call"
)

// ===============================
// Appointment
// ===============================

type Appointment struct {
	BaseModel

	PatientID   string `gorm:"size:36;index" json:"patient_id"`
	PatientName string `gorm:"size:100" json:"patient_name"`

	DoctorID        string `gorm:"size:36;index" json:"doctor_id"`
	DoctorName      string `gorm:"size:100" json:"doctor_name"`
	DoctorSpecialty string `gorm:"size:100" json:"doctor_specialty"`

	// Date is a calendar date (2006-01-02); Time is the local display slot.
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:20" json:"time"`

	Type   string `gorm:"size:30;default:'consultation'" json:"type"`
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Reason string `gorm:"size:255" json:"reason"`
	Notes  string `gorm:"type:text" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

package models

import "time"

// ===============================
// Prescription
// ===============================

type Prescription struct {
	BaseModel

	PatientID string `gorm:"size:36;index" json:"patient_id"`
	DoctorID  string `gorm:"size:36;index" json:"doctor_id"`

	Diagnosis string `gorm:"size:255" json:"diagnosis"`
	Notes     string `gorm:"type:text" json:"notes"`
	Status    string `gorm:"size:20;default:'active'" json:"status"`

	// RenewedFrom links a renewal back to the record it replaced.
	RenewedFrom string     `gorm:"size:36" json:"renewed_from,omitempty"`
	ExpiredAt   *time.Time `json:"expired_at,omitempty"`

	Medications []Medication `gorm:"foreignKey:PrescriptionID;constraint:OnDelete:CASCADE" json:"medications"`
}

type Medication struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	PrescriptionID string `gorm:"size:36;index" json:"prescription_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Dosage    string `gorm:"size:50" json:"dosage"`
	Frequency string `gorm:"size:50" json:"frequency"`
	Duration  string `gorm:"size:50" json:"duration"`
}

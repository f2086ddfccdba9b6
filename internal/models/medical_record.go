package models

// ===============================
// Medical record types
// ===============================

const (
	RecordTypeConsultation  = "consultation_note"
	RecordTypeLabResult     = "lab_result"
	RecordTypeImagingReport = "imaging_report"
	RecordTypeVaccination   = "vaccination_record"
	RecordTypeAllergy       = "allergy_record"
	RecordTypeDischarge     = "discharge_summary"
)

// ===============================
// Medical record
// ===============================

type MedicalRecord struct {
	BaseModel

	PatientID string `gorm:"size:36;index" json:"patient_id"`
	DoctorID  string `gorm:"size:36;index" json:"doctor_id"`

	RecordType string `gorm:"size:50" json:"record_type"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Department string `gorm:"size:100" json:"department"`
	Summary    string `gorm:"type:text" json:"summary"`
	Details    string `gorm:"type:text" json:"details"`

	Attachments []MedicalRecordAttachment `gorm:"foreignKey:MedicalRecordID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// MedicalRecordAttachment stores an uploaded file inline.
type MedicalRecordAttachment struct {
	BaseModel

	MedicalRecordID string `gorm:"size:36;index;not null" json:"medical_record_id"`
	FileName        string `gorm:"size:255;not null" json:"file_name"`
	FileType        string `gorm:"size:100;not null" json:"file_type"`
	FileData        []byte `gorm:"type:bytea" json:"-"`
}

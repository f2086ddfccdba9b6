package dto

type AppointmentListDTO struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Type            string `json:"type"`
	Status          string `json:"status"`
	PatientName     string `json:"patient_name"`
	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`
	Reason          string `json:"reason"`
}

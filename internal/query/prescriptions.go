package query

import (
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

type PrescriptionFilter struct {
	PatientID string
	Status    domain.Status
	Search    string
}

// Prescriptions derives the prescription list view. Search covers the
// diagnosis, the medication names and the id.
func Prescriptions(in []models.Prescription, f PrescriptionFilter) []models.Prescription {
	out := make([]models.Prescription, 0, len(in))

	for _, p := range in {
		if f.PatientID != "" && p.PatientID != f.PatientID {
			continue
		}
		if f.Status != "" && p.Status != string(f.Status) {
			continue
		}

		fields := make([]string, 0, len(p.Medications)+2)
		fields = append(fields, p.Diagnosis, p.ID)
		for _, m := range p.Medications {
			fields = append(fields, m.Name)
		}
		if !matchAny(f.Search, fields...) {
			continue
		}

		out = append(out, p)
	}

	return out
}

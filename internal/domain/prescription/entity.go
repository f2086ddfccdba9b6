package prescription

import (
	"time"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Issue validates a fresh prescription. Medications are fixed at creation;
// changing them later means renewing, never editing in place.
func Issue(p *models.Prescription, now time.Time) error {
	if len(p.Medications) == 0 {
		return httperr.ErrBusiness("empty_prescription")
	}
	for _, m := range p.Medications {
		if m.Name == "" {
			return httperr.ErrBusiness("invalid_medication")
		}
	}

	p.Status = string(InitialStatus())
	return nil
}

// Renew produces the replacement record and expires the prior one. An
// already expired prior record is left untouched; the renewal still yields
// exactly one new active prescription.
func Renew(prior *models.Prescription, now time.Time) *models.Prescription {
	next := &models.Prescription{
		PatientID:   prior.PatientID,
		DoctorID:    prior.DoctorID,
		Diagnosis:   prior.Diagnosis,
		Notes:       prior.Notes,
		Status:      string(StatusActive),
		RenewedFrom: prior.ID,
	}

	next.Medications = make([]models.Medication, 0, len(prior.Medications))
	for _, m := range prior.Medications {
		next.Medications = append(next.Medications, models.Medication{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		})
	}

	if prior.Status == string(StatusActive) {
		prior.Status = string(StatusExpired)
		prior.ExpiredAt = &now
	}

	return next
}

package prescription

import (
	"context"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type MedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
	Duration  string
}

type IssuePrescriptionInput struct {
	PatientID string
	DoctorID  string
	Diagnosis string
	Notes     string

	Medications []MedicationInput
}

// ======================================================
// USE CASE
// ======================================================

type IssuePrescription struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	mirror *snapshot.Mirror
	tz     string
}

func NewIssuePrescription(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	mirror *snapshot.Mirror,
	tz string,
) *IssuePrescription {
	return &IssuePrescription{
		repo:   repo,
		audit:  auditD,
		mirror: mirror,
		tz:     tz,
	}
}

func (uc *IssuePrescription) Execute(
	ctx context.Context,
	in IssuePrescriptionInput,
	actor audit.Actor,
) (*models.Prescription, error) {

	if in.PatientID == "" || in.DoctorID == "" {
		return nil, httperr.ErrBusiness("missing_participants")
	}

	p := &models.Prescription{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Diagnosis: in.Diagnosis,
		Notes:     in.Notes,
	}
	for _, m := range in.Medications {
		p.Medications = append(p.Medications, models.Medication{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		})
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Issue(p, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.EventFor(actor, "prescription_issued", "prescription", p.ID, nil))
	mirrorPrescriptions(ctx, uc.repo, uc.mirror)

	return p, nil
}

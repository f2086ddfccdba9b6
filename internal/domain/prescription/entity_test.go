package prescription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

func TestIssue(t *testing.T) {
	p := &models.Prescription{
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Medications: []models.Medication{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"},
		},
	}

	require.NoError(t, Issue(p, time.Now()))
	assert.Equal(t, string(StatusActive), p.Status)
}

func TestIssueRejectsEmptyMedications(t *testing.T) {
	p := &models.Prescription{PatientID: "patient-1", DoctorID: "doctor-1"}
	err := Issue(p, time.Now())
	assert.True(t, httperr.IsBusiness(err, "empty_prescription"))
}

func TestRenewExpiresPriorAndCopiesMedications(t *testing.T) {
	now := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	prior := &models.Prescription{
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Diagnosis: "Hypertension",
		Status:    string(StatusActive),
		Medications: []models.Medication{
			{ID: 7, PrescriptionID: "rx-1", Name: "Lisinopril", Dosage: "10mg"},
		},
	}
	prior.ID = "rx-1"

	next := Renew(prior, now)

	assert.Equal(t, string(StatusExpired), prior.Status)
	require.NotNil(t, prior.ExpiredAt)
	assert.Equal(t, now, *prior.ExpiredAt)

	assert.Equal(t, string(StatusActive), next.Status)
	assert.Equal(t, "rx-1", next.RenewedFrom)
	assert.Equal(t, prior.PatientID, next.PatientID)
	require.Len(t, next.Medications, 1)
	assert.Equal(t, "Lisinopril", next.Medications[0].Name)

	// Copied medications are fresh rows, not reparented ones.
	assert.Zero(t, next.Medications[0].ID)
	assert.Empty(t, next.Medications[0].PrescriptionID)
}

func TestRenewLeavesExpiredPriorUntouched(t *testing.T) {
	stamp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prior := &models.Prescription{
		Status:      string(StatusExpired),
		ExpiredAt:   &stamp,
		Medications: []models.Medication{{Name: "Metformin"}},
	}
	prior.ID = "rx-2"

	next := Renew(prior, time.Now())

	assert.Equal(t, string(StatusExpired), prior.Status)
	assert.Equal(t, stamp, *prior.ExpiredAt)
	assert.Equal(t, string(StatusActive), next.Status)
	assert.Equal(t, "rx-2", next.RenewedFrom)
}

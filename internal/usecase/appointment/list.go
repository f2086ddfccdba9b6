package appointment

import (
	"context"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/dto"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/query"
	"github.com/HealthHubServices/healthhub-api/internal/timezone"
)

type ListAppointments struct {
	repo domain.Repository
	tz   string
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{repo: repo, tz: tz}
}

// Execute fetches the owner-scoped collection and projects it through the
// pure filter layer. Today's date is resolved here so the projection itself
// stays deterministic.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	f query.AppointmentFilter,
) ([]dto.AppointmentListDTO, error) {

	var (
		aps []models.Appointment
		err error
	)

	switch {
	case f.PatientID != "":
		aps, err = uc.repo.ListByPatient(ctx, f.PatientID)
	case f.DoctorID != "":
		aps, err = uc.repo.ListByDoctor(ctx, f.DoctorID)
	default:
		aps, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if f.Today == "" {
		f.Today = timezone.TodayIn(uc.tz)
	}

	filtered := query.Appointments(aps, f)

	out := make([]dto.AppointmentListDTO, 0, len(filtered))
	for _, ap := range filtered {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Date:            ap.Date,
			Time:            ap.Time,
			Type:            ap.Type,
			Status:          ap.Status,
			PatientName:     ap.PatientName,
			DoctorName:      ap.DoctorName,
			DoctorSpecialty: ap.DoctorSpecialty,
			Reason:          ap.Reason,
		})
	}

	return out, nil
}

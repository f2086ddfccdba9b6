package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/prescription"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/query"
	ucPrescription "github.com/HealthHubServices/healthhub-api/internal/usecase/prescription"
)

// ======================================================
// HANDLER
// ======================================================

type PrescriptionHandler struct {
	issue *ucPrescription.IssuePrescription
	renew *ucPrescription.RenewPrescription
	list  *ucPrescription.ListPrescriptions
}

func NewPrescriptionHandler(
	issue *ucPrescription.IssuePrescription,
	renew *ucPrescription.RenewPrescription,
	list *ucPrescription.ListPrescriptions,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		issue: issue,
		renew: renew,
		list:  list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type MedicationRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type IssuePrescriptionRequest struct {
	PatientID   string              `json:"patient_id" binding:"required"`
	DoctorID    string              `json:"doctor_id" binding:"required"`
	Diagnosis   string              `json:"diagnosis"`
	Notes       string              `json:"notes"`
	Medications []MedicationRequest `json:"medications" binding:"required"`
}

// ======================================================
// ISSUE / RENEW / LIST
// ======================================================

func (h *PrescriptionHandler) Issue(c *gin.Context) {
	var req IssuePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid prescription payload.")
		return
	}

	in := ucPrescription.IssuePrescriptionInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Diagnosis: req.Diagnosis,
		Notes:     req.Notes,
	}
	for _, m := range req.Medications {
		in.Medications = append(in.Medications, ucPrescription.MedicationInput{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		})
	}

	p, err := h.issue.Execute(c.Request.Context(), in, middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_issue_prescription")
		return
	}

	httpresp.Created(c, p)
}

func (h *PrescriptionHandler) Renew(c *gin.Context) {
	p, err := h.renew.Execute(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_renew_prescription")
		return
	}

	httpresp.Created(c, p)
}

func (h *PrescriptionHandler) ListForPatient(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), query.PrescriptionFilter{
		PatientID: c.Param("id"),
		Status:    domain.Status(c.Query("status")),
		Search:    c.Query("search"),
	})
	if err != nil {
		writeDomainError(c, err, "failed_to_list_prescriptions")
		return
	}

	httpresp.List(c, out)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/appointment"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/query"
	ucAppointment "github.com/HealthHubServices/healthhub-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	updateStatus *ucAppointment.UpdateStatus
	reschedule   *ucAppointment.Reschedule
	annotate     *ucAppointment.Annotate
	list         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	reschedule *ucAppointment.Reschedule,
	annotate *ucAppointment.Annotate,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		annotate:     annotate,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID       string `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	DoctorID        string `json:"doctor_id"`
	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Type            string `json:"type"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type AnnotateRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// CREATE (patient booking / doctor scheduling)
// ======================================================

func (h *AppointmentHandler) CreateForPatient(c *gin.Context) {
	h.create(c, c.Param("id"), "")
}

func (h *AppointmentHandler) CreateForDoctor(c *gin.Context) {
	h.create(c, "", c.Param("id"))
}

func (h *AppointmentHandler) create(c *gin.Context, patientID, doctorID string) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if patientID != "" {
		req.PatientID = patientID
	}
	if doctorID != "" {
		req.DoctorID = doctorID
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID:       req.PatientID,
		PatientName:     req.PatientName,
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		DoctorSpecialty: req.DoctorSpecialty,
		Date:            req.Date,
		Time:            req.Time,
		Type:            req.Type,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}, middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_book_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (patient / doctor / admin views)
// ======================================================

func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	h.listScoped(c, query.AppointmentFilter{PatientID: c.Param("id")})
}

func (h *AppointmentHandler) ListForDoctor(c *gin.Context) {
	h.listScoped(c, query.AppointmentFilter{DoctorID: c.Param("id")})
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	h.listScoped(c, query.AppointmentFilter{})
}

func (h *AppointmentHandler) listScoped(c *gin.Context, f query.AppointmentFilter) {
	f.Status = domain.Status(c.Query("status"))
	f.Tab = query.AppointmentTab(c.Query("tab"))
	f.Search = c.Query("search")

	out, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		writeDomainError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATUS / RESCHEDULE / NOTES
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing status.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		c.Param("id"),
		domain.Status(req.Status),
		middleware.ActorFrom(c),
	)
	if err != nil {
		writeDomainError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing new slot.")
		return
	}

	ap, err := h.reschedule.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.Date,
		req.Time,
		middleware.ActorFrom(c),
	)
	if err != nil {
		writeDomainError(c, err, "failed_to_reschedule_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Annotate(c *gin.Context) {
	var req AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid notes payload.")
		return
	}

	ap, err := h.annotate.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.Notes,
		middleware.ActorFrom(c),
	)
	if err != nil {
		writeDomainError(c, err, "failed_to_annotate_appointment")
		return
	}

	httpresp.OK(c, ap)
}

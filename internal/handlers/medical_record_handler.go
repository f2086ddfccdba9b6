package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type MedicalRecordHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMedicalRecordHandler(db *gorm.DB, auditD *audit.Dispatcher) *MedicalRecordHandler {
	return &MedicalRecordHandler{db: db, audit: auditD}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMedicalRecordRequest struct {
	DoctorID   string `json:"doctor_id"`
	RecordType string `json:"record_type" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Department string `json:"department"`
	Summary    string `json:"summary"`
	Details    string `json:"details"`
}

// ======================================================
// LIST / CREATE
// ======================================================

func (h *MedicalRecordHandler) ListForPatient(c *gin.Context) {
	var records []models.MedicalRecord
	if err := h.db.
		Preload("Attachments").
		Where("patient_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&records).Error; err != nil {

		httperr.Internal(c, "failed_to_list_records", "Could not list medical records.")
		return
	}

	httpresp.List(c, records)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var req CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medical record payload.")
		return
	}

	record := models.MedicalRecord{
		PatientID:  c.Param("id"),
		DoctorID:   req.DoctorID,
		RecordType: req.RecordType,
		Title:      req.Title,
		Department: req.Department,
		Summary:    req.Summary,
		Details:    req.Details,
	}

	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_record", "Could not create medical record.")
		return
	}

	h.audit.Dispatch(audit.EventFor(
		middleware.ActorFrom(c),
		"medical_record_created",
		"medical_record",
		record.ID,
		nil,
	))

	httpresp.Created(c, record)
}

// ======================================================
// ATTACHMENTS
// ======================================================

func (h *MedicalRecordHandler) UploadAttachment(c *gin.Context) {
	recordID := c.Param("id")

	var record models.MedicalRecord
	if err := h.db.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "record_not_found", "Medical record not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_record", "Could not load medical record.")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attachment file is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read attachment.")
		return
	}

	attachment := models.MedicalRecordAttachment{
		MedicalRecordID: record.ID,
		FileName:        header.Filename,
		FileType:        header.Header.Get("Content-Type"),
		FileData:        data,
	}

	if err := h.db.Create(&attachment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_attachment", "Could not save attachment.")
		return
	}

	h.audit.Dispatch(audit.EventFor(
		middleware.ActorFrom(c),
		"attachment_uploaded",
		"medical_record",
		record.ID,
		map[string]string{"file_name": attachment.FileName},
	))

	httpresp.Created(c, attachment)
}

func (h *MedicalRecordHandler) DownloadAttachment(c *gin.Context) {
	var attachment models.MedicalRecordAttachment
	if err := h.db.First(&attachment, "id = ?", c.Param("attachmentId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "attachment_not_found", "Attachment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_attachment", "Could not load attachment.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	c.Data(http.StatusOK, attachment.FileType, attachment.FileData)
}

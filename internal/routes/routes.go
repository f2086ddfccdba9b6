package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	"github.com/HealthHubServices/healthhub-api/internal/config"
	"github.com/HealthHubServices/healthhub-api/internal/handlers"
	infraRepo "github.com/HealthHubServices/healthhub-api/internal/infra/repository"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
	ucAppointment "github.com/HealthHubServices/healthhub-api/internal/usecase/appointment"
	ucOrder "github.com/HealthHubServices/healthhub-api/internal/usecase/order"
	ucPrescription "github.com/HealthHubServices/healthhub-api/internal/usecase/prescription"
	ucUser "github.com/HealthHubServices/healthhub-api/internal/usecase/user"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	mirror *snapshot.Mirror,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	orderRepo := infraRepo.NewOrderGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)
	prescriptionRepo := infraRepo.NewPrescriptionGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	tz := cfg.ClinicTimezone

	// ======================================================
	// USE CASES
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, mirror, tz)
	updateAppointmentUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, mirror, tz)
	rescheduleUC := ucAppointment.NewReschedule(appointmentRepo, auditDispatcher, mirror, tz)
	annotateUC := ucAppointment.NewAnnotate(appointmentRepo, auditDispatcher, mirror)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, tz)

	createOrderUC := ucOrder.NewCreateOrder(orderRepo, auditDispatcher, mirror, tz)
	transitionOrderUC := ucOrder.NewTransitionOrder(orderRepo, auditDispatcher, mirror, tz)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)

	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher, mirror)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher, mirror)
	approveUserUC := ucUser.NewApproveUser(userRepo, auditDispatcher, mirror)
	rejectUserUC := ucUser.NewRejectUser(userRepo, auditDispatcher, mirror)
	listUsersUC := ucUser.NewListUsers(userRepo)

	issuePrescriptionUC := ucPrescription.NewIssuePrescription(prescriptionRepo, auditDispatcher, mirror, tz)
	renewPrescriptionUC := ucPrescription.NewRenewPrescription(prescriptionRepo, auditDispatcher, mirror, tz)
	listPrescriptionsUC := ucPrescription.NewListPrescriptions(prescriptionRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		bookAppointmentUC,
		updateAppointmentUC,
		rescheduleUC,
		annotateUC,
		listAppointmentsUC,
	)

	orderHandler := handlers.NewOrderHandler(
		createOrderUC,
		transitionOrderUC,
		listOrdersUC,
		orderRepo,
	)

	userHandler := handlers.NewUserHandler(
		createUserUC,
		updateUserUC,
		approveUserUC,
		rejectUserUC,
		listUsersUC,
	)

	prescriptionHandler := handlers.NewPrescriptionHandler(
		issuePrescriptionUC,
		renewPrescriptionUC,
		listPrescriptionsUC,
	)

	medicalRecordHandler := handlers.NewMedicalRecordHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	stateHandler := handlers.NewStateHandler(mirror)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PATIENT VIEW
		// ------------------------------
		patients := api.Group("/patients/:id")
		{
			patients.GET("/appointments", appointmentHandler.ListForPatient)
			patients.POST("/appointments", appointmentHandler.CreateForPatient)

			patients.GET("/prescriptions", prescriptionHandler.ListForPatient)

			patients.GET("/medical-records", medicalRecordHandler.ListForPatient)
			patients.POST("/medical-records", medicalRecordHandler.Create)
		}

		// ------------------------------
		// DOCTOR VIEW
		// ------------------------------
		doctors := api.Group("/doctors/:id")
		{
			doctors.GET("/appointments", appointmentHandler.ListForDoctor)
			doctors.POST("/appointments", appointmentHandler.CreateForDoctor)
		}

		// ------------------------------
		// SHARED LIFECYCLE OPERATIONS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.ListAll)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.PATCH("/appointments/:id/notes", appointmentHandler.Annotate)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders", orderHandler.List)
		api.GET("/orders/:id", orderHandler.Get)
		api.GET("/orders/:id/tracking", orderHandler.Tracking)
		api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		api.POST("/prescriptions", prescriptionHandler.Issue)
		api.POST("/prescriptions/:id/renew", prescriptionHandler.Renew)

		api.POST("/medical-records/:id/attachments", medicalRecordHandler.UploadAttachment)
		api.GET("/attachments/:attachmentId", medicalRecordHandler.DownloadAttachment)

		api.GET("/state/:collection", stateHandler.Get)

		// ------------------------------
		// ADMIN VIEW
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", userHandler.List)
			admin.POST("/users", userHandler.Create)
			admin.PATCH("/users/:id", userHandler.Update)
			admin.POST("/users/:id/approve", userHandler.Approve)
			admin.POST("/users/:id/reject", userHandler.Reject)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

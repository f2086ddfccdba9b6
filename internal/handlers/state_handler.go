package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/snapshot"
)

// StateHandler serves the mirrored collections so a fresh page load can
// bootstrap from the last observed state without hitting the database.
type StateHandler struct {
	mirror *snapshot.Mirror
}

func NewStateHandler(mirror *snapshot.Mirror) *StateHandler {
	return &StateHandler{mirror: mirror}
}

func (h *StateHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.Param("collection") {
	case "appointments":
		httpresp.List(c, snapshot.Load[models.Appointment](ctx, h.mirror, snapshot.KeyAppointments))
	case "orders":
		httpresp.List(c, snapshot.Load[models.Order](ctx, h.mirror, snapshot.KeyOrders))
	case "users":
		httpresp.List(c, snapshot.Load[models.User](ctx, h.mirror, snapshot.KeyUsers))
	case "prescriptions":
		httpresp.List(c, snapshot.Load[models.Prescription](ctx, h.mirror, snapshot.KeyPrescriptions))
	default:
		httperr.NotFound(c, "unknown_collection", "No such collection.")
	}
}

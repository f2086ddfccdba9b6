package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/HealthHubServices/healthhub-api/internal/domain/order"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/query"
	ucOrder "github.com/HealthHubServices/healthhub-api/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	create     *ucOrder.CreateOrder
	transition *ucOrder.TransitionOrder
	list       *ucOrder.ListOrders
	repo       domain.Repository
}

func NewOrderHandler(
	create *ucOrder.CreateOrder,
	transition *ucOrder.TransitionOrder,
	list *ucOrder.ListOrders,
	repo domain.Repository,
) *OrderHandler {
	return &OrderHandler{
		create:     create,
		transition: transition,
		list:       list,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required"`
}

type OrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
	Location       string `json:"location"`
	Description    string `json:"description"`
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid order payload.")
		return
	}

	in := ucOrder.CreateOrderInput{CustomerID: req.CustomerID}
	for _, it := range req.Items {
		in.Items = append(in.Items, ucOrder.ItemInput{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	o, err := h.create.Execute(c.Request.Context(), in, middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_create_order")
		return
	}

	httpresp.Created(c, o)
}

// ======================================================
// LIST / GET / TRACKING
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), query.OrderFilter{
		CustomerID: c.Query("customer_id"),
		Status:     domain.Status(c.Query("status")),
		Search:     c.Query("search"),
	})
	if err != nil {
		writeDomainError(c, err, "failed_to_list_orders")
		return
	}

	httpresp.List(c, out)
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "failed_to_get_order")
		return
	}

	httpresp.OK(c, o)
}

func (h *OrderHandler) Tracking(c *gin.Context) {
	o, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "failed_to_get_order")
		return
	}

	c.JSON(200, gin.H{
		"order_id":        o.ID,
		"status":          o.Status,
		"tracking_number": o.TrackingNumber,
		"history":         o.TrackingHistory,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing status.")
		return
	}

	o, err := h.transition.Execute(
		c.Request.Context(),
		c.Param("id"),
		domain.TransitionInput{
			To:             domain.Status(req.Status),
			TrackingNumber: req.TrackingNumber,
			Location:       req.Location,
			Description:    req.Description,
		},
		middleware.ActorFrom(c),
	)
	if err != nil {
		writeDomainError(c, err, "failed_to_update_order")
		return
	}

	httpresp.OK(c, o)
}

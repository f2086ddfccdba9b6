package handlers

import (
	"github.com/gin-gonic/gin"

	domainUser "github.com/HealthHubServices/healthhub-api/internal/domain/user"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/httpresp"
	"github.com/HealthHubServices/healthhub-api/internal/middleware"
	"github.com/HealthHubServices/healthhub-api/internal/models"
	"github.com/HealthHubServices/healthhub-api/internal/query"
	ucUser "github.com/HealthHubServices/healthhub-api/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	create  *ucUser.CreateUser
	update  *ucUser.UpdateUser
	approve *ucUser.ApproveUser
	reject  *ucUser.RejectUser
	list    *ucUser.ListUsers
}

func NewUserHandler(
	create *ucUser.CreateUser,
	update *ucUser.UpdateUser,
	approve *ucUser.ApproveUser,
	reject *ucUser.RejectUser,
	list *ucUser.ListUsers,
) *UserHandler {
	return &UserHandler{
		create:  create,
		update:  update,
		approve: approve,
		reject:  reject,
		list:    list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role" binding:"required"`
	Specialty  string `json:"specialty"`
	Department string `json:"department"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Status     *string `json:"status"`
	Specialty  *string `json:"specialty"`
	Department *string `json:"department"`
}

// ======================================================
// LIST / CREATE / UPDATE
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context(), query.UserFilter{
		Role:   models.Role(c.Query("role")),
		Status: domainUser.Status(c.Query("status")),
		Search: c.Query("search"),
	})
	if err != nil {
		writeDomainError(c, err, "failed_to_list_users")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	u, err := h.create.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       models.Role(req.Role),
		Specialty:  req.Specialty,
		Department: req.Department,
	}, middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_create_user")
		return
	}

	httpresp.Created(c, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	u, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucUser.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     req.Status,
		Specialty:  req.Specialty,
		Department: req.Department,
	}, middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_update_user")
		return
	}

	httpresp.OK(c, u)
}

// ======================================================
// APPROVAL WORKFLOW
// ======================================================

func (h *UserHandler) Approve(c *gin.Context) {
	u, err := h.approve.Execute(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_approve_user")
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) Reject(c *gin.Context) {
	u, err := h.reject.Execute(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c))
	if err != nil {
		writeDomainError(c, err, "failed_to_reject_user")
		return
	}

	httpresp.OK(c, u)
}

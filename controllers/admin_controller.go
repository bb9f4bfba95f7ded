package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/pkg/resp"
	"github.com/SineMag/Eatery/repository"
	"github.com/SineMag/Eatery/services"
)

// AdminController is the dashboard surface: the full order ledger, status
// updates, soft-deletion, and staff accounts.
type AdminController struct {
	Orders *services.OrderService
	Users  *repository.UserRepository
}

func NewAdminController(orders *services.OrderService, users *repository.UserRepository) *AdminController {
	return &AdminController{Orders: orders, Users: users}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname"`
	StaffID  string `json:"staffId"`
}

// GET /admin/orders (?status=)
func (h *AdminController) ListOrders(c *gin.Context) {
	orders := h.Orders.ListAll()
	if raw := c.Query("status"); raw != "" {
		want, err := entity.ParseOrderStatus(raw)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == want {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	status, err := entity.ParseOrderStatus(req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.UpdateStatus(c.Param("id"), status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		if errors.Is(err, entity.ErrInvalidTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /admin/orders/:id (soft-delete, idempotent)
func (h *AdminController) DeleteOrder(c *gin.Context) {
	h.Orders.Delete(c.Param("id"))
	resp.OK(c, gin.H{"deleted": true})
}

// GET /admin/staff
func (h *AdminController) ListStaff(c *gin.Context) {
	staff, err := h.Users.ListByRole(entity.RoleStaff)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, staff)
}

// POST /admin/staff
func (h *AdminController) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)
	count, err := h.Users.CountByEmail(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if count > 0 {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user := entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     req.Name,
		Surname:  req.Surname,
		StaffID:  req.StaffID,
		Role:     entity.RoleStaff,
	}
	if err := h.Users.Create(&user); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, userView(&user))
}

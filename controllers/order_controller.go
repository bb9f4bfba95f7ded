package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SineMag/Eatery/configs"
	"github.com/SineMag/Eatery/pkg/resp"
	"github.com/SineMag/Eatery/repository"
	"github.com/SineMag/Eatery/services"
	"github.com/SineMag/Eatery/utils"
)

type OrderController struct {
	Svc   *services.OrderService
	Cart  *services.CartService
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewOrderController(svc *services.OrderService, cart *services.CartService, users *repository.UserRepository, cfg *configs.Config) *OrderController {
	return &OrderController{Svc: svc, Cart: cart, Users: users, Cfg: cfg}
}

type CheckoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// POST /orders/checkout
//
// Totals are assembled here, at the checkout layer: subtotal from the cart,
// plus the configured delivery fee and VAT. The ledger stores the result
// without recomputing it.
func (h *OrderController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	uid := utils.CurrentUserID(c)
	// one snapshot for both lines and subtotal, so a concurrent cart edit
	// cannot slip between pricing and placing
	items, subtotal := h.Cart.Snapshot(uid)
	if len(items) == 0 {
		resp.BadRequest(c, "cart is empty")
		return
	}

	user, err := h.Users.FindByID(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	tax := subtotal.Mul(h.Cfg.VATRate)
	total := subtotal.Add(h.Cfg.DeliveryFee).Add(tax)

	order := h.Svc.Add(uid, items, total, req.DeliveryAddress, req.PaymentMethod,
		strings.TrimSpace(user.Name+" "+user.Surname), user.ContactNumber)

	h.Cart.Clear(uid)

	resp.Created(c, gin.H{
		"order":       order,
		"subtotal":    subtotal,
		"deliveryFee": h.Cfg.DeliveryFee,
		"tax":         tax,
	})
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	resp.OK(c, h.Svc.ListForUser(utils.CurrentUserID(c)))
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, ok := h.Svc.GetForUser(utils.CurrentUserID(c), c.Param("id"))
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}

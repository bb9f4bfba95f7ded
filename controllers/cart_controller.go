package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/pkg/resp"
	"github.com/SineMag/Eatery/services"
	"github.com/SineMag/Eatery/utils"
)

type CartController struct {
	Svc  *services.CartService
	Menu *services.MenuService
}

func NewCartController(cart *services.CartService, menu *services.MenuService) *CartController {
	return &CartController{Svc: cart, Menu: menu}
}

type AddToCartRequest struct {
	MenuItemID    string               `json:"menuItemId" binding:"required"`
	Quantity      int                  `json:"quantity" binding:"required,min=1"`
	Customization entity.Customization `json:"customization"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, subtotal := h.Svc.Snapshot(uid)
	resp.OK(c, gin.H{
		"items":     items,
		"subtotal":  subtotal,
		"itemCount": h.Svc.ItemCount(uid),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, ok := h.Menu.ItemByID(req.MenuItemID)
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}

	line, err := h.Svc.AddLine(utils.CurrentUserID(c), item, req.Quantity, req.Customization)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, line)
}

// PATCH /cart/items/:id/qty (qty <= 0 removes the line)
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.UpdateQuantity(utils.CurrentUserID(c), c.Param("id"), req.Quantity)
	resp.OK(c, gin.H{"updated": true})
}

// PUT /cart/items/:id/customization
func (h *CartController) UpdateCustomization(c *gin.Context) {
	var cust entity.Customization
	if err := c.ShouldBindJSON(&cust); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.UpdateCustomization(utils.CurrentUserID(c), c.Param("id"), cust)
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	h.Svc.RemoveLine(utils.CurrentUserID(c), c.Param("id"))
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cleared": true})
}

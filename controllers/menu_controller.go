package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SineMag/Eatery/entity"
	"github.com/SineMag/Eatery/pkg/resp"
	"github.com/SineMag/Eatery/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

type CreateMenuItemRequest struct {
	Name        string                    `json:"name" binding:"required"`
	Description string                    `json:"description"`
	Price       decimal.Decimal           `json:"price" binding:"required"`
	Image       string                    `json:"image"`
	CategoryID  string                    `json:"categoryId" binding:"required"`
	Sides       []entity.SideOption       `json:"sides"`
	Drinks      []entity.DrinkOption      `json:"drinks"`
	Extras      []entity.ExtraOption      `json:"extras"`
	Ingredients []entity.IngredientOption `json:"ingredients"`
}

// GET /menu (?category=)
func (h *MenuController) List(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		resp.OK(c, h.Svc.ItemsByCategory(cat))
		return
	}
	resp.OK(c, h.Svc.Items())
}

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	resp.OK(c, h.Svc.Categories())
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, ok := h.Svc.ItemByID(c.Param("id"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// POST /admin/menu
func (h *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := h.Svc.AddItem(entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Sides:       req.Sides,
		Drinks:      req.Drinks,
		Extras:      req.Extras,
		Ingredients: req.Ingredients,
	})
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
//
// An unknown id is treated as success, mirroring how the dashboard behaves:
// the edit form only ever submits ids it just listed.
func (h *MenuController) Update(c *gin.Context) {
	var upd entity.MenuItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.UpdateItem(c.Param("id"), upd)
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /admin/menu/:id
func (h *MenuController) Delete(c *gin.Context) {
	h.Svc.DeleteItem(c.Param("id"))
	resp.OK(c, gin.H{"deleted": true})
}

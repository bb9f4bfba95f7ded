package entity

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}

// SideOption carries no incremental charge when included with the base item.
type SideOption struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Included bool            `json:"included"`
}

type DrinkOption struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Included bool            `json:"included"`
}

type ExtraOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// IngredientOption is a fulfillment instruction, never priced. An ingredient
// may be removable, addable, both, or neither (purely informational).
type IngredientOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Removable bool   `json:"removable"`
	Addable   bool   `json:"addable"`
}

type MenuItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Image       string             `json:"image"`
	CategoryID  string             `json:"categoryId"`
	Sides       []SideOption       `json:"sides,omitempty"`
	Drinks      []DrinkOption      `json:"drinks,omitempty"`
	Extras      []ExtraOption      `json:"extras,omitempty"`
	Ingredients []IngredientOption `json:"ingredients,omitempty"`
}

// Clone returns a deep copy, so cart lines and order snapshots stay
// independent of later catalog edits.
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Sides != nil {
		out.Sides = append([]SideOption(nil), m.Sides...)
	}
	if m.Drinks != nil {
		out.Drinks = append([]DrinkOption(nil), m.Drinks...)
	}
	if m.Extras != nil {
		out.Extras = append([]ExtraOption(nil), m.Extras...)
	}
	if m.Ingredients != nil {
		out.Ingredients = append([]IngredientOption(nil), m.Ingredients...)
	}
	return out
}

// MenuItemUpdate is a partial update; nil fields are left as-is.
type MenuItemUpdate struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Price       *decimal.Decimal    `json:"price"`
	Image       *string             `json:"image"`
	CategoryID  *string             `json:"categoryId"`
	Sides       *[]SideOption       `json:"sides"`
	Drinks      *[]DrinkOption      `json:"drinks"`
	Extras      *[]ExtraOption      `json:"extras"`
	Ingredients *[]IngredientOption `json:"ingredients"`
}

func (u MenuItemUpdate) Apply(m *MenuItem) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.Price != nil {
		m.Price = *u.Price
	}
	if u.Image != nil {
		m.Image = *u.Image
	}
	if u.CategoryID != nil {
		m.CategoryID = *u.CategoryID
	}
	if u.Sides != nil {
		m.Sides = append([]SideOption(nil), (*u.Sides)...)
	}
	if u.Drinks != nil {
		m.Drinks = append([]DrinkOption(nil), (*u.Drinks)...)
	}
	if u.Extras != nil {
		m.Extras = append([]ExtraOption(nil), (*u.Extras)...)
	}
	if u.Ingredients != nil {
		m.Ingredients = append([]IngredientOption(nil), (*u.Ingredients)...)
	}
}

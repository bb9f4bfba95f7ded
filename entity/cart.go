package entity

import (
	"github.com/shopspring/decimal"
)

// Customization holds the side/drink/extra selections and ingredient
// add/remove instructions attached to one cart line.
type Customization struct {
	SelectedSides      []SideOption  `json:"selectedSides"`
	SelectedDrinks     []DrinkOption `json:"selectedDrinks"`
	SelectedExtras     []ExtraOption `json:"selectedExtras"`
	RemovedIngredients []string      `json:"removedIngredients"`
	AddedIngredients   []string      `json:"addedIngredients"`
	Notes              string        `json:"notes,omitempty"`
}

func (c Customization) Clone() Customization {
	out := c
	if c.SelectedSides != nil {
		out.SelectedSides = append([]SideOption(nil), c.SelectedSides...)
	}
	if c.SelectedDrinks != nil {
		out.SelectedDrinks = append([]DrinkOption(nil), c.SelectedDrinks...)
	}
	if c.SelectedExtras != nil {
		out.SelectedExtras = append([]ExtraOption(nil), c.SelectedExtras...)
	}
	if c.RemovedIngredients != nil {
		out.RemovedIngredients = append([]string(nil), c.RemovedIngredients...)
	}
	if c.AddedIngredients != nil {
		out.AddedIngredients = append([]string(nil), c.AddedIngredients...)
	}
	return out
}

// ToggleSide deselects the side if already selected. At the two-side cap the
// oldest selection is evicted instead of rejecting the tap.
func (c *Customization) ToggleSide(side SideOption) {
	for i, s := range c.SelectedSides {
		if s.ID == side.ID {
			c.SelectedSides = append(c.SelectedSides[:i], c.SelectedSides[i+1:]...)
			return
		}
	}
	if len(c.SelectedSides) >= 2 {
		c.SelectedSides = append(c.SelectedSides[1:], side)
		return
	}
	c.SelectedSides = append(c.SelectedSides, side)
}

func (c *Customization) ToggleDrink(drink DrinkOption) {
	for i, d := range c.SelectedDrinks {
		if d.ID == drink.ID {
			c.SelectedDrinks = append(c.SelectedDrinks[:i], c.SelectedDrinks[i+1:]...)
			return
		}
	}
	c.SelectedDrinks = append(c.SelectedDrinks, drink)
}

func (c *Customization) ToggleExtra(extra ExtraOption) {
	for i, e := range c.SelectedExtras {
		if e.ID == extra.ID {
			c.SelectedExtras = append(c.SelectedExtras[:i], c.SelectedExtras[i+1:]...)
			return
		}
	}
	c.SelectedExtras = append(c.SelectedExtras, extra)
}

// ToggleIngredient cases on the removable/addable flags. Removable-only and
// addable-only ingredients toggle membership in their one set. When both
// flags are set the ingredient cycles neutral → added → removed → neutral;
// an ingredient name never sits in both sets at once. Neither flag: no-op.
func (c *Customization) ToggleIngredient(ing IngredientOption) {
	switch {
	case ing.Removable && !ing.Addable:
		c.RemovedIngredients = toggleName(c.RemovedIngredients, ing.Name)
	case ing.Addable && !ing.Removable:
		c.AddedIngredients = toggleName(c.AddedIngredients, ing.Name)
	case ing.Removable && ing.Addable:
		if containsName(c.RemovedIngredients, ing.Name) {
			c.RemovedIngredients = removeName(c.RemovedIngredients, ing.Name)
		} else if containsName(c.AddedIngredients, ing.Name) {
			c.AddedIngredients = removeName(c.AddedIngredients, ing.Name)
			c.RemovedIngredients = append(c.RemovedIngredients, ing.Name)
		} else {
			c.AddedIngredients = append(c.AddedIngredients, ing.Name)
		}
	}
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func toggleName(names []string, name string) []string {
	if containsName(names, name) {
		return removeName(names, name)
	}
	return append(names, name)
}

// CartLine is one priced entry in a user's in-progress order. MenuItem is a
// denormalized snapshot of the catalog item, refreshed on reconciliation.
// TotalPrice is derived; it is recomputed on every mutation and never set
// directly.
type CartLine struct {
	ID            string          `json:"id"`
	MenuItem      MenuItem        `json:"menuItem"`
	Quantity      int             `json:"quantity"`
	Customization Customization   `json:"customization"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

func (l CartLine) Clone() CartLine {
	out := l
	out.MenuItem = l.MenuItem.Clone()
	out.Customization = l.Customization.Clone()
	return out
}

// CloneLines deep-copies a slice of cart lines, used when an order snapshots
// the cart at placement.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}

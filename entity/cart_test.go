package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func side(id, name string) SideOption {
	return SideOption{ID: id, Name: name, Included: true}
}

func TestToggleSideSelectsAndDeselects(t *testing.T) {
	var c Customization

	c.ToggleSide(side("s1", "Fries"))
	assert.Len(t, c.SelectedSides, 1)

	c.ToggleSide(side("s1", "Fries"))
	assert.Empty(t, c.SelectedSides)
}

func TestToggleSideEvictsOldestAtCap(t *testing.T) {
	var c Customization
	c.ToggleSide(side("s1", "Fries"))
	c.ToggleSide(side("s2", "Coleslaw"))
	c.ToggleSide(side("s3", "Salad"))

	assert.Len(t, c.SelectedSides, 2)
	assert.Equal(t, "s2", c.SelectedSides[0].ID)
	assert.Equal(t, "s3", c.SelectedSides[1].ID)

	// another tap keeps sliding the window
	c.ToggleSide(side("s4", "Rice"))
	assert.Len(t, c.SelectedSides, 2)
	assert.Equal(t, "s3", c.SelectedSides[0].ID)
	assert.Equal(t, "s4", c.SelectedSides[1].ID)
}

func TestToggleDrinkAndExtra(t *testing.T) {
	var c Customization

	d := DrinkOption{ID: "d1", Name: "Milkshake"}
	c.ToggleDrink(d)
	assert.Len(t, c.SelectedDrinks, 1)
	c.ToggleDrink(d)
	assert.Empty(t, c.SelectedDrinks)

	e := ExtraOption{ID: "e1", Name: "Bacon"}
	c.ToggleExtra(e)
	assert.Len(t, c.SelectedExtras, 1)
	c.ToggleExtra(e)
	assert.Empty(t, c.SelectedExtras)
}

func TestToggleIngredientRemovableOnly(t *testing.T) {
	var c Customization
	ing := IngredientOption{ID: "i1", Name: "Lettuce", Removable: true}

	c.ToggleIngredient(ing)
	assert.Equal(t, []string{"Lettuce"}, c.RemovedIngredients)
	assert.Empty(t, c.AddedIngredients)

	c.ToggleIngredient(ing)
	assert.Empty(t, c.RemovedIngredients)
}

func TestToggleIngredientAddableOnly(t *testing.T) {
	var c Customization
	ing := IngredientOption{ID: "i5", Name: "Jalapeños", Addable: true}

	c.ToggleIngredient(ing)
	assert.Equal(t, []string{"Jalapeños"}, c.AddedIngredients)

	c.ToggleIngredient(ing)
	assert.Empty(t, c.AddedIngredients)
}

func TestToggleIngredientBothCyclesThreeStates(t *testing.T) {
	var c Customization
	ing := IngredientOption{ID: "i4", Name: "Onion", Removable: true, Addable: true}

	assertAtMostOneSet := func() {
		t.Helper()
		both := containsName(c.AddedIngredients, "Onion") && containsName(c.RemovedIngredients, "Onion")
		assert.False(t, both, "ingredient must never be in both sets")
	}

	// neutral -> added
	c.ToggleIngredient(ing)
	assert.Equal(t, []string{"Onion"}, c.AddedIngredients)
	assert.Empty(t, c.RemovedIngredients)
	assertAtMostOneSet()

	// added -> removed
	c.ToggleIngredient(ing)
	assert.Empty(t, c.AddedIngredients)
	assert.Equal(t, []string{"Onion"}, c.RemovedIngredients)
	assertAtMostOneSet()

	// removed -> neutral
	c.ToggleIngredient(ing)
	assert.Empty(t, c.AddedIngredients)
	assert.Empty(t, c.RemovedIngredients)
}

func TestToggleIngredientInformationalIsNoop(t *testing.T) {
	var c Customization
	c.ToggleIngredient(IngredientOption{ID: "i9", Name: "Bun"})
	assert.Empty(t, c.AddedIngredients)
	assert.Empty(t, c.RemovedIngredients)
}

func TestCartLineCloneIsIndependent(t *testing.T) {
	line := CartLine{
		ID: "l1",
		MenuItem: MenuItem{
			ID:     "1",
			Sides:  []SideOption{side("s1", "Fries")},
			Extras: []ExtraOption{{ID: "e1", Name: "Bacon"}},
		},
		Quantity: 2,
		Customization: Customization{
			RemovedIngredients: []string{"Lettuce"},
		},
	}

	clone := line.Clone()
	clone.MenuItem.Sides[0].Name = "changed"
	clone.Customization.RemovedIngredients[0] = "changed"

	assert.Equal(t, "Fries", line.MenuItem.Sides[0].Name)
	assert.Equal(t, "Lettuce", line.Customization.RemovedIngredients[0])
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SineMag/Eatery/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func burger() entity.MenuItem {
	return entity.MenuItem{
		ID:         "1",
		Name:       "Classic Beef Burger",
		Price:      dec("89.99"),
		CategoryID: "1",
		Sides: []entity.SideOption{
			{ID: "s1", Name: "French Fries", Price: dec("0"), Included: true},
		},
		Drinks: []entity.DrinkOption{
			{ID: "d1", Name: "Coca-Cola", Price: dec("0"), Included: true},
			{ID: "d4", Name: "Milkshake", Price: dec("25"), Included: false},
		},
		Extras: []entity.ExtraOption{
			{ID: "e3", Name: "Cheese", Price: dec("15")},
		},
	}
}

func TestLineTotal(t *testing.T) {
	item := burger()

	// base only
	got := LineTotal(item, 1, entity.Customization{})
	assert.True(t, got.Equal(dec("89.99")), "got %s", got)

	// included drink and sides never price
	c := entity.Customization{
		SelectedSides:  []entity.SideOption{item.Sides[0]},
		SelectedDrinks: []entity.DrinkOption{item.Drinks[0]},
	}
	got = LineTotal(item, 3, c)
	assert.True(t, got.Equal(dec("269.97")), "got %s", got)

	// non-included drink and extra add to the unit price
	c = entity.Customization{
		SelectedDrinks: []entity.DrinkOption{item.Drinks[1]},
		SelectedExtras: []entity.ExtraOption{item.Extras[0]},
	}
	got = LineTotal(item, 2, c)
	assert.True(t, got.Equal(dec("259.98")), "got %s", got)

	// ingredient edits never price
	c.RemovedIngredients = []string{"Lettuce", "Tomato"}
	c.AddedIngredients = []string{"Jalapeños"}
	got = LineTotal(item, 2, c)
	assert.True(t, got.Equal(dec("259.98")), "got %s", got)
}

func TestAddLineRejectsNonPositiveQuantity(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	_, err := s.AddLine(1, burger(), 0, entity.Customization{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = s.AddLine(1, burger(), -2, entity.Customization{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, s.Lines(1))
}

func TestIdenticalAddsStayDistinctLines(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	l1, err := s.AddLine(1, burger(), 2, entity.Customization{})
	require.NoError(t, err)
	l2, err := s.AddLine(1, burger(), 2, entity.Customization{})
	require.NoError(t, err)

	assert.NotEqual(t, l1.ID, l2.ID)
	assert.Len(t, s.Lines(1), 2)
	assert.Equal(t, 4, s.ItemCount(1))
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	l1, _ := s.AddLine(1, burger(), 1, entity.Customization{})
	l2, _ := s.AddLine(1, burger(), 1, entity.Customization{})

	s.UpdateQuantity(1, l1.ID, 0)
	assert.Len(t, s.Lines(1), 1)

	s.UpdateQuantity(1, l2.ID, -5)
	assert.Empty(t, s.Lines(1))
}

func TestUpdateQuantityReprices(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())
	item := burger()

	c := entity.Customization{SelectedExtras: []entity.ExtraOption{item.Extras[0]}}
	line, _ := s.AddLine(1, item, 1, c)

	s.UpdateQuantity(1, line.ID, 3)

	lines := s.Lines(1)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	// (89.99 + 15) * 3
	assert.True(t, lines[0].TotalPrice.Equal(dec("314.97")), "got %s", lines[0].TotalPrice)
}

func TestUpdateCustomizationReprices(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())
	item := burger()

	line, _ := s.AddLine(1, item, 2, entity.Customization{})

	s.UpdateCustomization(1, line.ID, entity.Customization{
		SelectedDrinks: []entity.DrinkOption{item.Drinks[1]},
		SelectedExtras: []entity.ExtraOption{item.Extras[0]},
	})

	lines := s.Lines(1)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].TotalPrice.Equal(dec("259.98")), "got %s", lines[0].TotalPrice)
}

func TestRemoveUnknownLineIsNoop(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())
	s.AddLine(1, burger(), 1, entity.Customization{})

	s.RemoveLine(1, "no-such-line")
	assert.Len(t, s.Lines(1), 1)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	s.AddLine(1, burger(), 1, entity.Customization{})
	s.AddLine(2, burger(), 5, entity.Customization{})

	assert.Equal(t, 1, s.ItemCount(1))
	assert.Equal(t, 5, s.ItemCount(2))

	s.Clear(1)
	assert.Empty(t, s.Lines(1))
	assert.Len(t, s.Lines(2), 1)
}

func TestReconcileRepricesFromLatestCatalog(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	item := burger()
	item.Price = dec("100")
	line, _ := s.AddLine(1, item, 2, entity.Customization{})

	updated := item.Clone()
	updated.Price = dec("150")
	s.Reconcile([]entity.MenuItem{updated})

	lines := s.Lines(1)
	require.Len(t, lines, 1)
	assert.Equal(t, line.ID, lines[0].ID)
	assert.True(t, lines[0].TotalPrice.Equal(dec("300")), "got %s", lines[0].TotalPrice)
	assert.True(t, lines[0].MenuItem.Price.Equal(dec("150")))
}

func TestReconcileKeepsStaleSnapshotForDeletedItems(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())

	item := burger()
	s.AddLine(1, item, 2, entity.Customization{})

	// item gone from the catalog entirely
	s.Reconcile([]entity.MenuItem{})

	lines := s.Lines(1)
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].MenuItem.ID)
	assert.True(t, lines[0].TotalPrice.Equal(dec("179.98")), "got %s", lines[0].TotalPrice)
}

func TestReconcileRepricesCartsPersistedBeforeRestart(t *testing.T) {
	store := newMemStore()

	item := burger()
	item.Price = dec("100")
	s1 := NewCartService(store, testLogger())
	s1.AddLine(7, item, 2, entity.Customization{})

	// the price changes while user 7's cart sits cold in the store
	updated := item.Clone()
	updated.Price = dec("150")
	s2 := NewCartService(store, testLogger())
	s2.Reconcile([]entity.MenuItem{updated})

	lines := s2.Lines(7)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].TotalPrice.Equal(dec("300")), "got %s", lines[0].TotalPrice)
	assert.True(t, lines[0].MenuItem.Price.Equal(dec("150")))

	// the refresh is written back, so yet another restart sees the new price
	s3 := NewCartService(store, testLogger())
	lines = s3.Lines(7)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].TotalPrice.Equal(dec("300")), "got %s", lines[0].TotalPrice)
}

func TestSnapshotLinesAndTotalAgree(t *testing.T) {
	s := NewCartService(newMemStore(), testLogger())
	s.AddLine(1, burger(), 2, entity.Customization{})
	s.AddLine(1, burger(), 1, entity.Customization{})

	lines, total := s.Snapshot(1)
	require.Len(t, lines, 2)
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.TotalPrice)
	}
	assert.True(t, total.Equal(sum), "total %s, lines sum to %s", total, sum)
	assert.True(t, total.Equal(dec("269.97")), "got %s", total)
}

func TestCartSurvivesRestart(t *testing.T) {
	store := newMemStore()

	s := NewCartService(store, testLogger())
	s.AddLine(7, burger(), 2, entity.Customization{})

	// a new service over the same store sees the cart
	s2 := NewCartService(store, testLogger())
	lines := s2.Lines(7)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].TotalPrice.Equal(dec("179.98")))
}

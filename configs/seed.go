package configs

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SineMag/Eatery/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Surname:  "Seed",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultCategories is the static reference set; there is no admin surface
// for adding categories.
func DefaultCategories() []entity.Category {
	return []entity.Category{
		{ID: "1", Name: "Burgers", Icon: "🍔", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400"},
		{ID: "2", Name: "Mains", Icon: "🍽️", Image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400"},
		{ID: "3", Name: "Starters", Icon: "🥗", Image: "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400"},
		{ID: "4", Name: "Desserts", Icon: "🍰", Image: "https://images.unsplash.com/photo-1551024601-bec78aea704b?w=400"},
		{ID: "5", Name: "Beverages", Icon: "🥤", Image: "https://images.unsplash.com/photo-1544145945-f90425340c7e?w=400"},
		{ID: "6", Name: "Alcohol", Icon: "🍺", Image: "https://images.unsplash.com/photo-1566633806327-68e152aaf26d?w=400"},
	}
}

// DefaultMenuItems seeds the catalog the first time the app boots with an
// empty store. Admin edits are persisted over it.
func DefaultMenuItems() []entity.MenuItem {
	return []entity.MenuItem{
		{
			ID:          "1",
			Name:        "Classic Beef Burger",
			Description: "Juicy beef patty with fresh lettuce, tomato, pickles, and our special sauce on a toasted brioche bun.",
			Price:       price("89.99"),
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400",
			CategoryID:  "1",
			Sides: []entity.SideOption{
				{ID: "s1", Name: "French Fries", Price: price("0"), Included: true},
				{ID: "s2", Name: "Sweet Potato Fries", Price: price("0"), Included: true},
				{ID: "s3", Name: "Coleslaw", Price: price("0"), Included: true},
				{ID: "s4", Name: "Garden Salad", Price: price("0"), Included: true},
			},
			Drinks: []entity.DrinkOption{
				{ID: "d1", Name: "Coca-Cola", Price: price("0"), Included: true},
				{ID: "d2", Name: "Sprite", Price: price("0"), Included: true},
				{ID: "d3", Name: "Fanta", Price: price("0"), Included: true},
				{ID: "d4", Name: "Milkshake", Price: price("25"), Included: false},
			},
			Extras: []entity.ExtraOption{
				{ID: "e1", Name: "Extra Patty", Price: price("35")},
				{ID: "e2", Name: "Bacon", Price: price("20")},
				{ID: "e3", Name: "Cheese", Price: price("15")},
				{ID: "e4", Name: "Fried Egg", Price: price("12")},
				{ID: "e5", Name: "Extra Sauce", Price: price("8")},
			},
			Ingredients: []entity.IngredientOption{
				{ID: "i1", Name: "Lettuce", Removable: true, Addable: false},
				{ID: "i2", Name: "Tomato", Removable: true, Addable: false},
				{ID: "i3", Name: "Pickles", Removable: true, Addable: false},
				{ID: "i4", Name: "Onion", Removable: true, Addable: true},
				{ID: "i5", Name: "Jalapeños", Removable: false, Addable: true},
			},
		},
		{
			ID:          "2",
			Name:        "Chicken Burger",
			Description: "Crispy fried chicken breast with mayo, lettuce, and tomato on a sesame seed bun.",
			Price:       price("79.99"),
			Image:       "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400",
			CategoryID:  "1",
			Sides: []entity.SideOption{
				{ID: "s1", Name: "French Fries", Price: price("0"), Included: true},
				{ID: "s2", Name: "Onion Rings", Price: price("0"), Included: true},
				{ID: "s3", Name: "Coleslaw", Price: price("0"), Included: true},
			},
			Drinks: []entity.DrinkOption{
				{ID: "d1", Name: "Coca-Cola", Price: price("0"), Included: true},
				{ID: "d2", Name: "Iced Tea", Price: price("0"), Included: true},
			},
			Extras: []entity.ExtraOption{
				{ID: "e1", Name: "Extra Chicken", Price: price("30")},
				{ID: "e2", Name: "Cheese", Price: price("15")},
				{ID: "e3", Name: "Avocado", Price: price("25")},
			},
			Ingredients: []entity.IngredientOption{
				{ID: "i1", Name: "Lettuce", Removable: true, Addable: false},
				{ID: "i2", Name: "Tomato", Removable: true, Addable: false},
				{ID: "i3", Name: "Mayo", Removable: true, Addable: false},
			},
		},
		{
			ID:          "3",
			Name:        "Grilled Chicken Breast",
			Description: "Tender grilled chicken breast served with seasonal vegetables and your choice of sides.",
			Price:       price("119.99"),
			Image:       "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400",
			CategoryID:  "2",
			Sides: []entity.SideOption{
				{ID: "s1", Name: "Mashed Potatoes", Price: price("0"), Included: true},
				{ID: "s2", Name: "Rice", Price: price("0"), Included: true},
				{ID: "s3", Name: "Grilled Vegetables", Price: price("0"), Included: true},
				{ID: "s4", Name: "Pap", Price: price("0"), Included: true},
			},
			Drinks: []entity.DrinkOption{
				{ID: "d1", Name: "Still Water", Price: price("0"), Included: true},
				{ID: "d2", Name: "Sparkling Water", Price: price("10"), Included: false},
				{ID: "d3", Name: "Fresh Juice", Price: price("25"), Included: false},
			},
			Extras: []entity.ExtraOption{
				{ID: "e1", Name: "Extra Vegetables", Price: price("20")},
				{ID: "e2", Name: "Mushroom Sauce", Price: price("18")},
				{ID: "e3", Name: "Pepper Sauce", Price: price("18")},
			},
			Ingredients: []entity.IngredientOption{
				{ID: "i1", Name: "Herbs", Removable: true, Addable: false},
				{ID: "i2", Name: "Garlic Butter", Removable: true, Addable: true},
			},
		},
	}
}

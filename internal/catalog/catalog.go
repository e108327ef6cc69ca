// Package catalog holds the static product list. Products are defined once at
// build time and never mutated; there is no persistence behind them.
package catalog

import "storefront/internal/models"

var products = []models.Product{
	{
		ID:           "granola-cocoa",
		Name:         "Cocoa Granola",
		Type:         models.TypeGranola,
		Price:        12.00,
		Description:  "Crunchy oat clusters with raw cocoa and a hint of sea salt.",
		Ingredients:  models.StringList{"rolled oats", "raw cocoa", "honey", "coconut oil", "sea salt"},
		Protein:      "9g",
		PackageImage: "/images/products/granola-cocoa.png",
		BgColor:      "#f5ede4",
		AccentColor:  "#5b3a29",
	},
	{
		ID:           "granola-berry",
		Name:         "Wild Berry Granola",
		Type:         models.TypeGranola,
		Price:        12.00,
		Description:  "Baked oats with dried cranberries, blueberries and almonds.",
		Ingredients:  models.StringList{"rolled oats", "cranberries", "blueberries", "almonds", "honey"},
		Protein:      "8g",
		PackageImage: "/images/products/granola-berry.png",
		BgColor:      "#f7e8ee",
		AccentColor:  "#8e3b5c",
	},
	{
		ID:           "granola-nut",
		Name:         "Toasted Nut Granola",
		Type:         models.TypeGranola,
		Price:        13.00,
		Description:  "Double-toasted oats with walnuts, pecans and maple syrup.",
		Ingredients:  models.StringList{"rolled oats", "walnuts", "pecans", "maple syrup", "cinnamon"},
		Protein:      "10g",
		PackageImage: "/images/products/granola-nut.png",
		BgColor:      "#f1ead9",
		AccentColor:  "#7a5c2e",
	},
	{
		ID:           "balls-peanut",
		Name:         "Peanut Energy Balls",
		Type:         models.TypeBalls,
		Price:        9.50,
		Description:  "Date-based protein balls rolled in crushed peanuts.",
		Ingredients:  models.StringList{"dates", "peanuts", "oats", "chia seeds"},
		Protein:      "7g",
		PackageImage: "/images/products/balls-peanut.png",
		BgColor:      "#efe6d8",
		AccentColor:  "#9c6b2f",
	},
	{
		ID:           "balls-coconut",
		Name:         "Coconut Energy Balls",
		Type:         models.TypeBalls,
		Price:        9.50,
		Description:  "Cashew and date balls coated in shredded coconut.",
		Ingredients:  models.StringList{"dates", "cashews", "coconut", "vanilla"},
		Protein:      "6g",
		PackageImage: "/images/products/balls-coconut.png",
		BgColor:      "#eef4ef",
		AccentColor:  "#3f6e4e",
	},
	{
		ID:           "balls-espresso",
		Name:         "Espresso Energy Balls",
		Type:         models.TypeBalls,
		Price:        10.00,
		Description:  "Cold-brew infused cocoa balls for slow-release energy.",
		Ingredients:  models.StringList{"dates", "almonds", "cocoa", "espresso", "flax seeds"},
		Protein:      "7g",
		PackageImage: "/images/products/balls-espresso.png",
		BgColor:      "#ece2dc",
		AccentColor:  "#4a342b",
	},
	{
		ID:           "dessert-brownie",
		Name:         "Raw Cacao Brownie",
		Type:         models.TypeDessert,
		Price:        14.00,
		Description:  "Fudgy no-bake brownie sweetened only with dates.",
		Ingredients:  models.StringList{"dates", "cacao", "walnuts", "almond butter"},
		Protein:      "6g",
		PackageImage: "/images/products/dessert-brownie.png",
		BgColor:      "#e9dcd4",
		AccentColor:  "#52301f",
	},
	{
		ID:           "dessert-lemon",
		Name:         "Lemon Bliss Bites",
		Type:         models.TypeDessert,
		Price:        13.50,
		Description:  "Zesty cashew bites with cold-pressed lemon oil.",
		Ingredients:  models.StringList{"cashews", "dates", "lemon oil", "coconut"},
		Protein:      "5g",
		PackageImage: "/images/products/dessert-lemon.png",
		BgColor:      "#faf3dc",
		AccentColor:  "#9c8a28",
	},
}

// All returns every product in catalog order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByType returns products of one category, preserving catalog order.
func ByType(t models.ProductType) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a single product.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

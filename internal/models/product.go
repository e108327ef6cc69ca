package models

// ProductType is the closed set of catalog categories.
type ProductType string

const (
	TypeGranola ProductType = "granola"
	TypeBalls   ProductType = "balls"
	TypeDessert ProductType = "dessert"
)

// Product is an immutable catalog record. The catalog is loaded once at
// startup and never mutated; there is no product lifecycle.
type Product struct {
	ID           string      `bson:"id" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Type         ProductType `bson:"type" json:"type"`
	Price        float64     `bson:"price" json:"price"`
	Description  string      `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients  StringList  `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	Protein      string      `bson:"protein,omitempty" json:"protein,omitempty"`
	PackageImage string      `bson:"packageImage" json:"packageImage"`
	BgColor      string      `bson:"bgColor,omitempty" json:"bgColor,omitempty"`
	AccentColor  string      `bson:"accentColor,omitempty" json:"accentColor,omitempty"`
}

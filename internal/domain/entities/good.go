package entities

import (
	"github.com/volatiletech/null/v8"
)

// CategoryName is one of the fixed catalog categories
type CategoryName string

const (
	CategoryBeverages   CategoryName = "beverages"
	CategoryConfections CategoryName = "confections"
	CategoryCars        CategoryName = "cars"
	CategoryGames       CategoryName = "games"
)

// AllCategories lists the seeded categories in id order
var AllCategories = []CategoryName{CategoryBeverages, CategoryConfections, CategoryCars, CategoryGames}

// Category represents a catalog category
type Category struct {
	ID          int64        `json:"id"`
	Name        CategoryName `json:"category_name"`
	Description string       `json:"description"`
}

// Good represents a sellable product
type Good struct {
	ID         int64   `json:"id"`
	Name       string  `json:"product_name"`
	SellerID   int64   `json:"seller_id"`
	CategoryID int64   `json:"category_id"`
	UnitPrice  float64 `json:"unit_price"`
}

// AddGoodInput represents input for listing a good
type AddGoodInput struct {
	Name     string       `json:"good_name" binding:"required,max=255"`
	Category CategoryName `json:"good_category" binding:"required,oneof=beverages confections cars games"`
	Price    *float64     `json:"good_price" binding:"required,gte=0"`
}

// GoodView is a seller's own listing row
type GoodView struct {
	Name     string       `json:"good_name"`
	Category CategoryName `json:"good_category"`
	Price    float64      `json:"good_price"`
}

// SellerGoodView is a listing row joined with its seller
type SellerGoodView struct {
	SellerName string       `json:"seller_name"`
	Name       string       `json:"good_name"`
	Category   CategoryName `json:"good_category"`
	Price      float64      `json:"good_price"`
}

// GoodSearch holds search filters. An invalid MaxPrice means "up to the current maximum".
type GoodSearch struct {
	Category null.String
	MinPrice float64
	MaxPrice null.Float64
}

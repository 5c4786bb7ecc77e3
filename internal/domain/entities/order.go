package entities

import "time"

// Order represents a customer's purchase header
type Order struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	ShipCountry string    `json:"ship_country"`
	DateOrder   time.Time `json:"date_order"`
}

// OrderDetail is a line of an order
type OrderDetail struct {
	OrderID  int64   `json:"order_id"`
	GoodID   int64   `json:"good_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// MaxLineQuantity caps the quantity of one good in an order, duplicates summed
const MaxLineQuantity = 1000000

// AddOrderInput represents input for placing an order.
// ProductList and CountList are matched by position.
type AddOrderInput struct {
	ProductList []int64 `json:"product_list" binding:"required,min=1,dive,gt=0"`
	CountList   []int   `json:"count_list" binding:"required,min=1,dive,gt=0,max=1000000"`
	Country     string  `json:"country" binding:"required,max=255"`
}

// OrderGood is a good resolved for order placement together with its seller
type OrderGood struct {
	ID          int64
	Name        string
	UnitPrice   float64
	SellerID    int64
	SellerName  string
	SellerEmail string
}

// OrderedItem is one good of a placed order as reported in notifications
type OrderedItem struct {
	SellerEmail string
	GoodName    string
	Count       int
}

// OrderLine is a flattened order/detail/good row of a customer's history
type OrderLine struct {
	OrderID     int64
	GoodName    string
	UnitPrice   float64
	Quantity    int
	ShipCountry string
}

// OrderSummary is an order rendered for its customer
type OrderSummary struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

package models

import (
	"time"
)

type Order struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64     `gorm:"not null;index"`
	DateOrder   time.Time `gorm:"not null"`
	ShipCountry string    `gorm:"type:varchar(255);not null"`

	Customer User `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderDetail struct {
	OrderID  int64   `gorm:"primaryKey;autoIncrement:false"`
	GoodID   int64   `gorm:"primaryKey;autoIncrement:false"`
	Quantity int     `gorm:"not null"`
	Price    float64 `gorm:"not null"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Good  Good  `gorm:"foreignKey:GoodID;constraint:OnDelete:CASCADE"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

package models

type Category struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CategoryName string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description  string `gorm:"type:text"`
}

func (Category) TableName() string {
	return "categories"
}

type Good struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	ProductName string  `gorm:"type:varchar(255);not null"`
	SellerID    int64   `gorm:"not null;index"`
	CategoryID  int64   `gorm:"not null;index"`
	UnitPrice   float64 `gorm:"not null"`

	Seller   User     `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	Category Category `gorm:"foreignKey:CategoryID"`
}

func (Good) TableName() string {
	return "goods"
}

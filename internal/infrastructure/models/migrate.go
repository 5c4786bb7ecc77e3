package models

import "gorm.io/gorm"

// All lists the models in dependency order
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Good{}, &Order{}, &OrderDetail{}}
}

// AutoMigrate creates or updates the schema. Local development only.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

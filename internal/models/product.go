package models

import "time"

// Product represents a product in the store.
// ProductImg is always stored as a relative path (e.g. "/uploads/<name>");
// it is expanded to an absolute URL at response time only.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductName string    `json:"productName" gorm:"type:varchar(100)"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ProductImg  string    `json:"product_img" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

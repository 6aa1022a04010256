package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusSuccessful OrderStatus = "Successful"
	StatusCancelled  OrderStatus = "Cancelled"
	StatusSuspended  OrderStatus = "Suspended"
)

// Valid reports whether s is one of the four permitted status values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccessful, StatusCancelled, StatusSuspended:
		return true
	}
	return false
}

// Order represents a customer order.
// OrderNumber is the client-facing correlation ID; it is generated
// server-side exactly once at creation and never changes.
type Order struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	OrderNumber         string      `json:"order_number" gorm:"uniqueIndex;type:varchar(36)"`
	Username            string      `json:"username" gorm:"type:varchar(100)"`
	Phonenumber         string      `json:"phonenumber" gorm:"type:varchar(32)"`
	Email               string      `json:"email" gorm:"type:varchar(255)"`
	State               string      `json:"state" gorm:"type:varchar(100)"`
	Address             string      `json:"address"`
	LocalGovernmentArea string      `json:"local_government_area" gorm:"type:varchar(100)"`
	ProductName         string      `json:"product_name" gorm:"type:varchar(100)"`
	NumberOfItems       int         `json:"number_of_items"`
	TotalPrice          float64     `json:"total_price"`
	Note                string      `json:"note"`
	OrderStatus         OrderStatus `json:"order_status" gorm:"type:varchar(16)"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

package repositories

import (
	"splgadgets/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	List(page Page) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	Delete(id uint) error
}

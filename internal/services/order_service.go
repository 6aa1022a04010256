package services

import (
	"errors"
	"fmt"
	"log"

	"splgadgets/internal/models"
	"splgadgets/internal/repositories"

	"github.com/google/uuid"
)

// ErrInvalidStatus is returned when an order status update names a value
// outside the permitted enum. The check happens before any write is issued.
var ErrInvalidStatus = errors.New("invalid order status")

// EventPublisher publishes order lifecycle events. Implemented by
// pkg/rabbitmq.Client; a nil publisher disables event publication.
type EventPublisher interface {
	Publish(event string, payload interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo   repositories.OrderRepository
	events EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(repo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
	}
}

// ListOrders retrieves one page of orders.
func (s *OrderService) ListOrders(page repositories.Page) ([]models.Order, error) {
	return s.repo.List(page)
}

// PlaceOrder persists a new order. The order number and the initial
// Pending status are assigned here regardless of what the client sent.
func (s *OrderService) PlaceOrder(order *models.Order) error {
	order.ID = 0
	order.OrderNumber = uuid.New().String()
	order.OrderStatus = models.StatusPending

	if err := s.repo.Create(order); err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_number": order.OrderNumber,
		"product_name": order.ProductName,
		"total_price":  order.TotalPrice,
		"status":       order.OrderStatus,
	})
	return nil
}

// UpdateStatus moves an order to a new lifecycle state. Values outside
// the enum are rejected without touching storage.
func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.publish("order.status_updated", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})
	return nil
}

// DeleteOrder removes an order by its id.
func (s *OrderService) DeleteOrder(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publish("order.deleted", map[string]interface{}{
		"order_id": id,
	})
	return nil
}

// publish emits an event when a publisher is configured. Publish failures
// are logged, never surfaced: the write already succeeded.
func (s *OrderService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", event, err)
	}
}

package handlers

import (
	"splgadgets/internal/models"
	"splgadgets/internal/services"
	"splgadgets/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// OrderRequest is the client payload for placing an order.
type OrderRequest struct {
	Username            string  `json:"username" validate:"required"`
	Phonenumber         string  `json:"phonenumber" validate:"required"`
	Email               string  `json:"email" validate:"required,email"`
	State               string  `json:"state" validate:"required"`
	Address             string  `json:"address" validate:"required"`
	LocalGovernmentArea string  `json:"local_government_area" validate:"required"`
	ProductName         string  `json:"product_name" validate:"required"`
	NumberOfItems       int     `json:"number_of_items" validate:"required"`
	TotalPrice          float64 `json:"total_price" validate:"required"`
	Note                string  `json:"note"`
}

// OrderHandler handles the public order endpoint.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/order", h.HandlePlaceOrder)
}

// HandlePlaceOrder validates and persists a new order. The order number
// and Pending status come from the service, never from the client.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validation.Check(req); err != nil {
		return err
	}

	order := &models.Order{
		Username:            req.Username,
		Phonenumber:         req.Phonenumber,
		Email:               req.Email,
		State:               req.State,
		Address:             req.Address,
		LocalGovernmentArea: req.LocalGovernmentArea,
		ProductName:         req.ProductName,
		NumberOfItems:       req.NumberOfItems,
		TotalPrice:          req.TotalPrice,
		Note:                req.Note,
	}
	if err := h.service.PlaceOrder(order); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Order placed successfully",
		"order_number": order.OrderNumber,
	})
}

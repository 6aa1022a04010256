package handlers

import (
	"splgadgets/internal/models"
	"splgadgets/internal/repositories"
	"splgadgets/internal/services"
	"splgadgets/internal/upload"
	"splgadgets/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductRequest carries the multipart form fields of a product write.
// The image travels separately under the product_img file field.
type ProductRequest struct {
	ProductName string  `form:"productName" validate:"required,min=3"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Description string  `form:"description" validate:"required,min=10"`
}

// AdminHandler handles the order and product management surface.
type AdminHandler struct {
	orders   *services.OrderService
	products *services.ProductService
	uploads  *upload.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orders *services.OrderService, products *services.ProductService, uploads *upload.Store) *AdminHandler {
	return &AdminHandler{
		orders:   orders,
		products: products,
		uploads:  uploads,
	}
}

// RegisterRoutes registers the admin routes on router (typically an
// /admin group).
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleListOrders)
	router.Put("/order/:id", h.HandleUpdateOrderStatus)
	router.Delete("/order/:id", h.HandleDeleteOrder)

	router.Get("/products", h.HandleListProducts)
	router.Post("/product", h.HandleAddProduct)
	router.Put("/product/:id", h.HandleUpdateProduct)
	router.Delete("/product/:id", h.HandleDeleteProduct)
}

// HandleListOrders returns one page of orders.
func (h *AdminHandler) HandleListOrders(c *fiber.Ctx) error {
	page := repositories.ParsePage(c.Query("page"), c.Query("limit"))
	orders, err := h.orders.ListOrders(page)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus moves an order to a new lifecycle state.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.orders.UpdateStatus(uint(id), models.OrderStatus(body.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order status updated successfully"})
}

// HandleDeleteOrder removes an order.
func (h *AdminHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	if err := h.orders.DeleteOrder(uint(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}

// HandleListProducts returns one page of products with absolute image URLs.
func (h *AdminHandler) HandleListProducts(c *fiber.Ctx) error {
	page := repositories.ParsePage(c.Query("page"), c.Query("limit"))
	products, err := h.products.ListProducts(page)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleAddProduct validates the form fields and the uploaded image, then
// persists both. The file is rejected before any row is written.
func (h *AdminHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Check(req); err != nil {
		return err
	}

	file, err := c.FormFile("product_img")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Product image is required")
	}
	imgPath, err := h.uploads.Save(c, file)
	if err != nil {
		return err
	}

	product := &models.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Description: req.Description,
		ProductImg:  imgPath,
	}
	if err := h.products.CreateProduct(product); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product added successfully",
		"productId": product.ID,
	})
}

// HandleUpdateProduct replaces a product's fields. The image file is
// optional here: without one the stored image is kept.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Check(req); err != nil {
		return err
	}

	var imgPath string
	if file, err := c.FormFile("product_img"); err == nil {
		imgPath, err = h.uploads.Save(c, file)
		if err != nil {
			return err
		}
	}

	fields := models.Product{
		ProductName: req.ProductName,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.products.UpdateProduct(uint(id), fields, imgPath); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully"})
}

// HandleDeleteProduct removes a product.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	if err := h.products.DeleteProduct(uint(id)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

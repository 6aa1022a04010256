package services_test

import (
	"fmt"
	"testing"

	"splgadgets/internal/models"
	"splgadgets/internal/repositories"
	"splgadgets/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testBaseURL = "http://localhost:3000"

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) List(page repositories.Page) ([]models.Product, error) {
	args := m.Called(page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts_RewritesImageURLs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	stored := []models.Product{
		{ID: 1, ProductName: "Gadget", ProductImg: "/uploads/1-abc-gadget.png"},
		{ID: 2, ProductName: "Widget", ProductImg: "/uploads/2-def-widget.jpg"},
	}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, testBaseURL+"/uploads/1-abc-gadget.png", products[0].ProductImg)
	assert.Equal(t, testBaseURL+"/uploads/2-def-widget.jpg", products[1].ProductImg)
	// The repository's slice must stay untouched: relative paths only in storage.
	assert.Equal(t, "/uploads/1-abc-gadget.png", stored[0].ProductImg)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_RewritesImageURLs(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	page := repositories.Page{Number: 2, Limit: 5}
	mockRepo.On("List", page).Return([]models.Product{
		{ID: 6, ProductName: "Gadget", ProductImg: "/uploads/6.png"},
	}, nil).Once()

	products, err := service.ListProducts(page)

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, testBaseURL+"/uploads/6.png", products[0].ProductImg)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	product := &models.Product{ProductName: "Gadget", Price: 25.0, Description: "A fine gadget indeed", ProductImg: "/uploads/x.png"}
	mockRepo.On("Create", product).Return(nil).Once()

	assert.NoError(t, service.CreateProduct(product))
	mockRepo.AssertExpectations(t)

	mockRepo.On("Create", product).Return(fmt.Errorf("database error")).Once()
	assert.Error(t, service.CreateProduct(product))
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_PreservesImageWithoutNewFile(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	existing := &models.Product{ID: 1, ProductName: "Gadget", Price: 25.0, Description: "A fine gadget indeed", ProductImg: "/uploads/old.png"}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ProductImg == "/uploads/old.png" && p.ProductName == "Gadget v2"
	})).Return(nil).Once()

	fields := models.Product{ProductName: "Gadget v2", Price: 30.0, Description: "An even finer gadget"}
	err := service.UpdateProduct(1, fields, "")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ReplacesImageWithNewFile(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	existing := &models.Product{ID: 1, ProductName: "Gadget", Price: 25.0, Description: "A fine gadget indeed", ProductImg: "/uploads/old.png"}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ProductImg == "/uploads/new.png"
	})).Return(nil).Once()

	fields := models.Product{ProductName: "Gadget", Price: 25.0, Description: "A fine gadget indeed"}
	err := service.UpdateProduct(1, fields, "/uploads/new.png")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	mockRepo.On("GetByID", uint(99)).
		Return(nil, fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()

	err := service.UpdateProduct(99, models.Product{ProductName: "Ghost"}, "")

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, testBaseURL)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(1))

	mockRepo.On("Delete", uint(99)).
		Return(fmt.Errorf("product 99: %w", repositories.ErrProductNotFound)).Once()
	assert.ErrorIs(t, service.DeleteProduct(99), repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

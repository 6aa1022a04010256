package services

import (
	"splgadgets/internal/models"
	"splgadgets/internal/repositories"
)

// ProductService handles business logic related to products.
// baseURL is the public address prefixed to stored image paths whenever
// products are serialized; the stored value stays relative.
type ProductService struct {
	repo    repositories.ProductRepository
	baseURL string
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, baseURL string) *ProductService {
	return &ProductService{
		repo:    repo,
		baseURL: baseURL,
	}
}

// GetAllProducts retrieves every product with absolute image URLs.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.withImageURLs(products), nil
}

// ListProducts retrieves one page of products with absolute image URLs.
func (s *ProductService) ListProducts(page repositories.Page) ([]models.Product, error) {
	products, err := s.repo.List(page)
	if err != nil {
		return nil, err
	}
	return s.withImageURLs(products), nil
}

// CreateProduct persists a new product. product.ProductImg must already be
// the storage-relative path yielded by the upload store.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct replaces the mutable fields of an existing product.
// An empty imgPath preserves the currently stored image.
func (s *ProductService) UpdateProduct(id uint, fields models.Product, imgPath string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	existing.ProductName = fields.ProductName
	existing.Price = fields.Price
	existing.Description = fields.Description
	if imgPath != "" {
		existing.ProductImg = imgPath
	}

	return s.repo.Update(existing)
}

// DeleteProduct deletes a product by its id.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

func (s *ProductService) withImageURLs(products []models.Product) []models.Product {
	shaped := make([]models.Product, len(products))
	for i, p := range products {
		p.ProductImg = s.baseURL + p.ProductImg
		shaped[i] = p
	}
	return shaped
}

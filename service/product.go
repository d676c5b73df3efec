package service

import (
	"errors"
	"fmt"

	"mozeh-api/models"

	"gorm.io/gorm"
)

// ProductService manages the catalog. Nothing here touches orders: historical
// order lines keep their snapshots regardless of catalog edits or deletions.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns the catalog, newest first. Public — no auth required.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("created_at desc").Find(&products).Error
	return products, err
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(nameAr string, price float64, inStock int, imageURL *string) (*models.Product, error) {
	if nameAr == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if inStock < 0 {
		inStock = 0
	}
	product := models.Product{
		NameAr:   nameAr,
		Price:    price,
		InStock:  inStock,
		ImageURL: imageURL,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update edits a product in place. A nil imageURL keeps the current image.
func (s *ProductService) Update(id, nameAr string, price float64, inStock int, imageURL *string) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if nameAr == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if inStock < 0 {
		inStock = 0
	}
	updates := map[string]any{
		"name_ar":  nameAr,
		"price":    price,
		"in_stock": inStock,
	}
	if imageURL != nil {
		updates["image_url"] = *imageURL
	}
	if err := s.db.Model(product).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete hard-deletes a product. Orders that referenced it are untouched.
func (s *ProductService) Delete(id string) error {
	res := s.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return nil
}

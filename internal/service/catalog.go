package service

import (
	"context"
	"errors"
	"strings"

	"cafe-commerce/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Featured products are the top sellers proxy: highest stock first.
const featuredLimit = 8

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ProductFilter fields combine with logical AND; nil/empty means "no filter".
type ProductFilter struct {
	CategoryID *int64
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

func (s *CatalogService) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	query := s.db.WithContext(ctx).Model(&model.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Product"}
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID int64) (*model.Category, []model.Product, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &NotFoundError{Resource: "Category"}
		}
		return nil, nil, err
	}

	var products []model.Product
	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, nil, err
	}
	return &category, products, nil
}

func (s *CatalogService) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).
		Where("stock_quantity > 0").
		Order("stock_quantity DESC").
		Limit(featuredLimit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

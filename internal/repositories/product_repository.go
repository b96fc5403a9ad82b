package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type ProductRepository interface {
	InsertCategory(ctx context.Context, category *db_models.ProductCategory) error
	ListCategories(ctx context.Context) ([]db_models.ProductCategory, error)
	FindCategoryByID(ctx context.Context, id string) (*db_models.ProductCategory, error)

	Insert(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (p *productRepository) InsertCategory(ctx context.Context, category *db_models.ProductCategory) error {
	return p.db.WithContext(ctx).Create(category).Error
}

func (p *productRepository) ListCategories(ctx context.Context) ([]db_models.ProductCategory, error) {
	var categories []db_models.ProductCategory
	err := p.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.display_order ASC")
		}).
		Order("display_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (p *productRepository) FindCategoryByID(ctx context.Context, id string) (*db_models.ProductCategory, error) {
	var category db_models.ProductCategory
	err := p.db.WithContext(ctx).First(&category, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (p *productRepository) Insert(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}

func (p *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		First(&product, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

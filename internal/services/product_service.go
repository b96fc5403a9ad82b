package services

import (
	"context"

	"github.com/google/uuid"

	"confreg/internal/models/db_models"
	"confreg/internal/models/request_models"
	"confreg/internal/models/response_models"
	"confreg/internal/repositories"
	"confreg/pkg/utils"
)

type ProductServiceInterface interface {
	CreateCategory(ctx context.Context, req request_models.ProductCategoryRequest) (string, error)
	CreateProduct(ctx context.Context, req request_models.NewProductRequest) (string, error)
	UpdateProduct(ctx context.Context, id string, req request_models.EditProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*response_models.ProductResponse, error)
	// Catalog is the public listing, ordered by category then product
	// display order. activeOnly hides drafts from the public view.
	Catalog(ctx context.Context, activeOnly bool) ([]response_models.ProductResponse, error)
}

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (p *ProductService) CreateCategory(ctx context.Context, req request_models.ProductCategoryRequest) (string, error) {
	category := &db_models.ProductCategory{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}
	if err := p.productRepo.InsertCategory(ctx, category); err != nil {
		return "", utils.ErrDatabaseError
	}
	return category.ID.String(), nil
}

func (p *ProductService) CreateProduct(ctx context.Context, req request_models.NewProductRequest) (string, error) {
	categoryID, err := uuid.Parse(req.Product.CategoryID)
	if err != nil {
		return "", utils.ErrCategoryNotFound
	}
	category, err := p.productRepo.FindCategoryByID(ctx, categoryID.String())
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if category == nil {
		return "", utils.ErrCategoryNotFound
	}

	product := &db_models.Product{
		CategoryID:   categoryID,
		Description:  req.Product.Description,
		Cost:         req.Product.Cost,
		DisplayOrder: req.Product.DisplayOrder,
		Active:       req.Product.Active,
		BadgeText:    req.Product.BadgeText,
	}
	if err := p.productRepo.Insert(ctx, product); err != nil {
		return "", utils.ErrDatabaseError
	}
	return product.ID.String(), nil
}

func (p *ProductService) UpdateProduct(ctx context.Context, id string, req request_models.EditProductRequest) error {
	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}

	categoryID, err := uuid.Parse(req.Product.CategoryID)
	if err != nil {
		return utils.ErrCategoryNotFound
	}
	category, err := p.productRepo.FindCategoryByID(ctx, categoryID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	product.CategoryID = categoryID
	product.Description = req.Product.Description
	product.Cost = req.Product.Cost
	product.DisplayOrder = req.Product.DisplayOrder
	product.Active = req.Product.Active
	product.BadgeText = req.Product.BadgeText

	if err := p.productRepo.Update(ctx, product); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}
	if err := p.productRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProductService) GetProduct(ctx context.Context, id string) (*response_models.ProductResponse, error) {
	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	resp := toProductResponse(product, &product.Category)
	return &resp, nil
}

func (p *ProductService) Catalog(ctx context.Context, activeOnly bool) ([]response_models.ProductResponse, error) {
	categories, err := p.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var result []response_models.ProductResponse
	for i := range categories {
		category := &categories[i]
		for j := range category.Products {
			product := &category.Products[j]
			if activeOnly && !product.Active {
				continue
			}
			result = append(result, toProductResponse(product, category))
		}
	}
	return result, nil
}

func toProductResponse(product *db_models.Product, category *db_models.ProductCategory) response_models.ProductResponse {
	return response_models.ProductResponse{
		ID:            product.ID.String(),
		Category:      category.Name,
		CategoryOrder: category.DisplayOrder,
		ProductOrder:  product.DisplayOrder,
		Description:   product.Description,
		Cost:          product.Cost,
		Active:        product.Active,
		BadgeText:     product.BadgeText,
	}
}

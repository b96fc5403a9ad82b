package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"confreg/internal/models/request_models"
	"confreg/internal/services"
	"confreg/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// Catalog godoc
// @Summary Public product catalog
// @Description Active products ordered by category and display order
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /products [get]
func (pc *ProductController) Catalog(c *gin.Context) {
	products, err := pc.productService.Catalog(c.Request.Context(), true)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// AdminList godoc
// @Summary Full product listing
// @Description Every product, drafts included
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/all [get]
func (pc *ProductController) AdminList(c *gin.Context) {
	products, err := pc.productService.Catalog(c.Request.Context(), false)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// View godoc
// @Summary View a product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (pc *ProductController) View(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product fetched successfully")
}

// Create godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.NewProductRequest true "Product payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products [post]
func (pc *ProductController) Create(c *gin.Context) {
	var req request_models.NewProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := pc.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Product created")
}

// Update godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param request body request_models.EditProductRequest true "Product payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id} [put]
func (pc *ProductController) Update(c *gin.Context) {
	var req request_models.EditProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "The product has been updated successfully.")
}

// Delete godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product has been deleted.")
}

// CreateCategory godoc
// @Summary Create a product category
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.ProductCategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /product-categories [post]
func (pc *ProductController) CreateCategory(c *gin.Context) {
	var req request_models.ProductCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := pc.productService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Product category created")
}

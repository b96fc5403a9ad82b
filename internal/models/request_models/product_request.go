package request_models

type ProductFields struct {
	CategoryID   string  `json:"category_id" binding:"required,uuid"`
	Description  string  `json:"description" binding:"required"`
	Cost         int64   `json:"cost" binding:"min=0,max=20000000"`
	DisplayOrder int     `json:"display_order"`
	Active       bool    `json:"active"`
	BadgeText    *string `json:"badge_text"`
}

type NewProductRequest struct {
	Product ProductFields `json:"product" binding:"required"`
}

type EditProductRequest struct {
	Product ProductFields `json:"product" binding:"required"`
}

type ProductCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

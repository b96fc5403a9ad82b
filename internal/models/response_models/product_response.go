package response_models

type ProductResponse struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	CategoryOrder int     `json:"category_order"`
	ProductOrder  int     `json:"product_order"`
	Description   string  `json:"description"`
	Cost          int64   `json:"cost"`
	Active        bool    `json:"active"`
	BadgeText     *string `json:"badge_text,omitempty"`
}

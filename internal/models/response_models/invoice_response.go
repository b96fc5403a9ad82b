package response_models

type InvoiceItemResponse struct {
	Description string `json:"description"`
	Qty         int    `json:"qty"`
	Cost        int64  `json:"cost"`
	Total       int64  `json:"total"`
}

type InvoiceResponse struct {
	ID               string                `json:"id"`
	PersonID         string                `json:"person_id"`
	Items            []InvoiceItemResponse `json:"items"`
	Total            int64                 `json:"total"`
	TotalDisplay     string                `json:"total_display"`
	Paid             bool                  `json:"paid"`
	GoodPayments     int                   `json:"good_payments"`
	BadPayments      int                   `json:"bad_payments"`
	LastModification int64                 `json:"last_modification"`
}

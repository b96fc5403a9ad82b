package request_models

import "encoding/json"

// RecordPaymentRequest is posted by the payment gateway callback handler.
type RecordPaymentRequest struct {
	Amount     int64           `json:"amount" binding:"required,gt=0"`
	Success    bool            `json:"success"`
	GatewayRef string          `json:"gateway_ref" binding:"required"`
	Receipt    json.RawMessage `json:"receipt"`
}

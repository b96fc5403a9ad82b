package response_models

type RegistrationResponse struct {
	ID            string `json:"id"`
	PersonID      string `json:"person_id"`
	Type          string `json:"type"`
	Dinner        int    `json:"dinner"`
	Accommodation string `json:"accommodation,omitempty"`
	Checkin       int    `json:"checkin,omitempty"`
	Checkout      int    `json:"checkout,omitempty"`
	DiscountCode  string `json:"discount_code,omitempty"`
	InvoiceID     string `json:"invoice_id,omitempty"`
	Paid          bool   `json:"paid"`
}

// EarlybirdStatusResponse is the advisory early-bird banner. It never
// blocks a registration.
type EarlybirdStatusResponse struct {
	Open    bool   `json:"open"`
	Message string `json:"message"`
}

package request_models

// RegistrationFields carries the registration form proper. Shared between
// signup and edit.
type RegistrationFields struct {
	Type string `json:"type" binding:"required,oneof=Hobbyist Professional Concession Speaker"`

	Company   string `json:"company"`
	ShirtSize string `json:"shirt_size" binding:"required"`
	Diet      string `json:"diet"`
	Special   string `json:"special"`

	Dinner int `json:"dinner" binding:"min=0"`

	// "own" accommodation is expressed by leaving the id empty.
	AccommodationID string `json:"accommodation_id"`
	Checkin         int    `json:"checkin" binding:"min=0,max=31"`
	Checkout        int    `json:"checkout" binding:"min=0,max=31"`

	DiscountCode string `json:"discount_code"`

	PartnerEmail string `json:"partner_email" binding:"omitempty,email"`
	Kids0_3      *int   `json:"kids_0_3" binding:"omitempty,min=0"`
	Kids4_6      *int   `json:"kids_4_6" binding:"omitempty,min=0"`
	Kids7_9      *int   `json:"kids_7_9" binding:"omitempty,min=0"`
	Kids10_11    *int   `json:"kids_10_11" binding:"omitempty,min=0"`
	Kids12_17    *int   `json:"kids_12_17" binding:"omitempty,min=0"`
	PPAdults     *int   `json:"pp_adults" binding:"omitempty,min=0"`

	SpeakerPPPayAdult *int `json:"speaker_pp_pay_adult" binding:"omitempty,min=0"`
	SpeakerPPPayChild *int `json:"speaker_pp_pay_child" binding:"omitempty,min=0"`
}

// NewRegistrationRequest creates a registration, and an account with it when
// the caller is not signed in.
type NewRegistrationRequest struct {
	Person       *SignUpRequest     `json:"person"`
	Registration RegistrationFields `json:"registration" binding:"required"`
}

type EditRegistrationRequest struct {
	Registration RegistrationFields `json:"registration" binding:"required"`
}

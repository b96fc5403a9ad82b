package db_models

type Accommodation struct {
	BaseModel
	Name   string
	Option string
	// Whole currency units per night; invoices convert to cents.
	CostPerNight int64
	Beds         int
	// Venue reserved for accepted speakers.
	SpeakerOnly bool

	Registrations []Registration `gorm:"foreignKey:AccommodationID"`
}

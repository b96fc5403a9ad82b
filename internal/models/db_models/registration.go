package db_models

import "github.com/google/uuid"

type RegistrationType string

const (
	RegTypeHobbyist     RegistrationType = "Hobbyist"
	RegTypeProfessional RegistrationType = "Professional"
	RegTypeConcession   RegistrationType = "Concession"
	RegTypeSpeaker      RegistrationType = "Speaker"
)

type Registration struct {
	BaseModel
	PersonID uuid.UUID        `gorm:"index;unique"`
	Type     RegistrationType `gorm:"index"`

	Company   string
	ShirtSize string
	Diet      string
	Special   string

	Dinner int // extra conference dinner tickets

	AccommodationID *uuid.UUID
	// Day-of-month integers; a stay can wrap a month boundary.
	Checkin  int
	Checkout int

	DiscountCode   string
	DiscountCodeID *uuid.UUID `gorm:"index"`

	// Partner's Programme. Nullable counts, nil means not answered.
	PartnerEmail string
	Kids0_3      *int
	Kids4_6      *int
	Kids7_9      *int
	Kids10_11    *int
	Kids12_17    *int
	PPAdults     *int

	// Speakers nominate how many PP places they pay for themselves.
	SpeakerPPPayAdult *int
	SpeakerPPPayChild *int

	Person        Person         `gorm:"foreignKey:PersonID"`
	Accommodation *Accommodation `gorm:"foreignKey:AccommodationID"`
	Discount      *DiscountCode  `gorm:"foreignKey:DiscountCodeID"`
}

// PPAdultCount is the chargeable Partner's Programme adult headcount.
// Kids 12-17 are charged at the adult rate.
func (r *Registration) PPAdultCount(isSpeaker bool) int {
	if isSpeaker {
		return intOrZero(r.SpeakerPPPayAdult)
	}
	return intOrZero(r.Kids12_17) + intOrZero(r.PPAdults)
}

func (r *Registration) PPChildCount(isSpeaker bool) int {
	if isSpeaker {
		return intOrZero(r.SpeakerPPPayChild)
	}
	return intOrZero(r.Kids0_3) + intOrZero(r.Kids4_6) +
		intOrZero(r.Kids7_9) + intOrZero(r.Kids10_11)
}

// AccommodationNights wraps negative spans by whole months; stays are
// short enough that a 31-day month is close enough.
func (r *Registration) AccommodationNights() int {
	nights := r.Checkout - r.Checkin
	for nights < 0 {
		nights += 31
	}
	return nights
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
